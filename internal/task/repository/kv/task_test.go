package kv_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"todo-manager/internal/task"
	"todo-manager/internal/task/repository"
	"todo-manager/internal/task/repository/kv"
	"todo-manager/pkg/kvstore"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type brokenStore struct{}

func (brokenStore) Get(ctx context.Context, key string) (string, bool, error) {
	return "", false, errors.New("disk unavailable")
}
func (brokenStore) Set(ctx context.Context, key, value string) error { return errors.New("quota exceeded") }
func (brokenStore) Close() error                                      { return nil }

func TestRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemory()
	r := kv.New(store, "", &mockLogger{})

	due := time.Date(2025, 7, 8, 14, 30, 0, 0, time.FixedZone("CEST", 2*3600))
	want := []task.Task{
		{ID: 1720000000000, Text: "Buy milk #shopping", Category: "shopping"},
		{ID: 1720000000001, Text: "Call mom", DueAt: &due, Completed: true},
	}

	if err := r.Save(ctx, want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, ok, _ := store.Get(ctx, kv.DefaultKey); !ok {
		t.Fatalf("expected snapshot under default key")
	}

	got, err := r.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d tasks, got %d", len(want), len(got))
	}
	for i := range want {
		w, g := want[i], got[i]
		if g.ID != w.ID || g.Text != w.Text || g.Category != w.Category || g.Completed != w.Completed {
			t.Errorf("task %d mismatch: got %+v, want %+v", i, g, w)
		}
		if (w.DueAt == nil) != (g.DueAt == nil) {
			t.Errorf("task %d DueAt presence mismatch", i)
		} else if w.DueAt != nil && !w.DueAt.Equal(*g.DueAt) {
			t.Errorf("task %d DueAt = %v, want %v", i, g.DueAt, w.DueAt)
		}
	}
}

func TestLoadSnapshots(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		raw       *string
		wantCount int
		check     func(t *testing.T, tasks []task.Task)
	}{
		{name: "absent", raw: nil, wantCount: 0},
		{name: "empty string", raw: strPtr(""), wantCount: 0},
		{name: "garbage", raw: strPtr("{not json"), wantCount: 0},
		{name: "wrong shape", raw: strPtr(`{"id":1}`), wantCount: 0},
		{
			name:      "browser snapshot",
			raw:       strPtr(`[{"id":1751975400000,"text":"Pay rent #home","datetime":"2025-07-08T14:30","category":"home","completed":false},{"id":1751975400001,"text":"Gym","datetime":"","category":"","completed":true}]`),
			wantCount: 2,
			check: func(t *testing.T, tasks []task.Task) {
				if tasks[0].DueAt == nil || !tasks[0].DueAt.Equal(time.Date(2025, 7, 8, 14, 30, 0, 0, time.UTC)) {
					t.Errorf("datetime-local not restored: %v", tasks[0].DueAt)
				}
				if tasks[1].DueAt != nil || !tasks[1].Completed {
					t.Errorf("unexpected second task: %+v", tasks[1])
				}
			},
		},
		{
			name:      "unreadable datetime keeps task",
			raw:       strPtr(`[{"id":5,"text":"x","datetime":"soon","category":"","completed":false}]`),
			wantCount: 1,
			check: func(t *testing.T, tasks []task.Task) {
				if tasks[0].DueAt != nil || tasks[0].Text != "x" {
					t.Errorf("unexpected task: %+v", tasks[0])
				}
			},
		},
		{
			name:      "invalid records skipped and normalized",
			raw:       strPtr(`[null,{"id":0,"text":"no id"},{"id":7,"text":"   "},{"id":8,"text":" Pay rent ","category":" HOME ","datetime":"","completed":false},{"id":8,"text":"dup"}]`),
			wantCount: 1,
			check: func(t *testing.T, tasks []task.Task) {
				if tasks[0].ID != 8 || tasks[0].Text != "Pay rent" || tasks[0].Category != "home" {
					t.Errorf("unexpected task: %+v", tasks[0])
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := kvstore.NewMemory()
			if tt.raw != nil {
				store.Set(ctx, "todo", *tt.raw)
			}
			r := kv.New(store, "todo", &mockLogger{})

			tasks, err := r.Load(ctx)
			if err != nil {
				t.Fatalf("Load should not fail: %v", err)
			}
			if tasks == nil {
				t.Fatalf("expected non-nil slice")
			}
			if len(tasks) != tt.wantCount {
				t.Fatalf("expected %d tasks, got %d", tt.wantCount, len(tasks))
			}
			if tt.check != nil {
				tt.check(t, tasks)
			}
		})
	}
}

func TestCorruptFileRecovers(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "tasks.json")
	if err := os.WriteFile(path, []byte("{truncated"), 0o644); err != nil {
		t.Fatal(err)
	}
	store, err := kvstore.NewFile(path)
	if err != nil {
		t.Fatal(err)
	}
	r := kv.New(store, "", &mockLogger{})

	tasks, err := r.Load(ctx)
	if err != nil || len(tasks) != 0 {
		t.Fatalf("corrupt file should load empty, got %v err=%v", tasks, err)
	}

	want := []task.Task{{ID: 1, Text: "fresh start"}}
	if err := r.Save(ctx, want); err != nil {
		t.Fatalf("Save after corrupt load: %v", err)
	}
	got, err := r.Load(ctx)
	if err != nil || len(got) != 1 || got[0].Text != "fresh start" {
		t.Errorf("expected saved task back, got %v err=%v", got, err)
	}
}

func TestStoreFailures(t *testing.T) {
	ctx := context.Background()
	r := kv.New(brokenStore{}, "", &mockLogger{})

	if _, err := r.Load(ctx); !errors.Is(err, repository.ErrFailedToLoad) {
		t.Errorf("expected ErrFailedToLoad, got %v", err)
	}
	if err := r.Save(ctx, nil); !errors.Is(err, repository.ErrFailedToSave) {
		t.Errorf("expected ErrFailedToSave, got %v", err)
	}
}

func TestNewRequiresStore(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for nil store")
		}
	}()
	kv.New(nil, "", &mockLogger{})
}

func strPtr(s string) *string { return &s }
