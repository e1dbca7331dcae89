package workload

// Task is a handle to a spawned participant. Join blocks until the
// participant's function has returned.
type Task struct {
	id   int
	done chan struct{}
}

// Spawn starts participant id running fn in its own goroutine and
// returns a handle for joining it. The goroutine runs to completion;
// there is no cancellation.
func Spawn(id int, fn func(id int)) *Task {
	t := &Task{id: id, done: make(chan struct{})}
	go func() {
		defer close(t.done)
		fn(id)
	}()
	return t
}

// ID returns the participant id this task was spawned with.
func (t *Task) ID() int {
	return t.id
}

// Join waits for the participant to finish.
func (t *Task) Join() {
	<-t.done
}

// runPair spawns participants 0 and 1 concurrently, joins both, and
// returns only after both have terminated. The caller may then read
// shared state without synchronization: Join's channel receive orders
// the participants' writes before the caller's reads.
func runPair(fn func(id int)) {
	t0 := Spawn(0, fn)
	t1 := Spawn(1, fn)
	t0.Join()
	t1.Join()
}
