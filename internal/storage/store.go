// Package storage provides key/value persistence for run results and
// settings. The durable implementation uses the pure-Go modernc.org/sqlite
// driver; an in-memory store serves as the degraded fallback so gameplay
// never depends on a working database.
package storage

// Store is the persistence collaborator: opaque JSON blobs keyed by string.
// Implementations are synchronous; callers that must not block wrap calls
// in a Task via Run.
type Store interface {
	// Get returns the stored value and whether the key exists.
	Get(key string) ([]byte, bool, error)

	// Put stores the value under the key, overwriting any previous value.
	Put(key string, value []byte) error

	// Delete removes the key. Deleting a missing key is not an error.
	Delete(key string) error

	// Clear removes every key.
	Clear() error

	// Close releases underlying resources.
	Close() error
}

// Task is an awaitable handle for an asynchronous persistence operation.
// The owner holds it and waits before discarding state that the operation
// depends on.
type Task struct {
	done chan struct{}
	err  error
}

// Run executes fn on its own goroutine and returns a handle for awaiting
// its completion.
func Run(fn func() error) *Task {
	t := &Task{done: make(chan struct{})}
	go func() {
		t.err = fn()
		close(t.done)
	}()
	return t
}

// Completed returns an already-finished task carrying err. Useful when an
// operation short-circuits synchronously.
func Completed(err error) *Task {
	t := &Task{done: make(chan struct{}), err: err}
	close(t.done)
	return t
}

// Wait blocks until the task finishes and returns its error.
func (t *Task) Wait() error {
	<-t.done
	return t.err
}

// Done returns a channel closed when the task finishes. Err is only valid
// after Done is closed.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Err returns the task error. Call it only after Done is closed.
func (t *Task) Err() error {
	return t.err
}
