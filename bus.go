package byteproc

// busState is one of Idle, Read-pending, or Write-pending.
type busState int

const (
	busIdle busState = iota
	busRead
	busWrite
)

// Bus is a single-holder mailbox mediating every memory transaction
// between the processor and memory. It is not a concurrent object: at
// any instant exactly one party acts on it per tick (the CPU on
// dispatch, the memory on completion), and the tick loop hands it to
// each device in turn.
//
// A memory request spans multiple ticks: on tick t the CPU dispatches
// and memory, acting after it in the same tick, fulfills; on tick t+1
// the CPU reads the result. This one-tick latency is what forces the CPU's state machine
// to have distinct fetch-dispatch and fetch-receive states rather than
// a single step function.
type Bus struct {
	state   busState
	address *Address
	data    *Word
}

// Available reports whether the bus is Idle with both slots empty.
func (b *Bus) Available() bool {
	return b.state == busIdle && b.address == nil && b.data == nil
}

// DispatchRead places a read request on the bus. It is fatal to
// dispatch while the bus is not available.
func (b *Bus) DispatchRead(addr Address) error {
	if !b.Available() {
		return ErrBusNotAvailable
	}
	b.state = busRead
	a := addr
	b.address = &a
	return nil
}

// DispatchWrite places a write request on the bus, carrying both the
// address and the data to store. It is fatal to dispatch while the bus
// is not available.
func (b *Bus) DispatchWrite(addr Address, val Word) error {
	if !b.Available() {
		return ErrBusNotAvailable
	}
	b.state = busWrite
	a := addr
	v := val
	b.address = &a
	b.data = &v
	return nil
}

// ReadData takes ownership of the data slot if it is full, leaving it
// empty. The requester calls this exactly once per read transaction to
// collect the result. A completed write leaves the data slot empty; the
// requester confirms it by finding the bus Available again.
func (b *Bus) ReadData() (Word, bool) {
	if b.data == nil {
		return 0, false
	}
	v := *b.data
	b.data = nil
	return v, true
}

// takeAddress is the memory-side counterpart of ReadData: it consumes
// the address slot so the memory can perform the effect.
func (b *Bus) takeAddress() (Address, bool) {
	if b.address == nil {
		return 0, false
	}
	a := *b.address
	b.address = nil
	return a, true
}

// takeData is the memory-side read of the write payload; distinct from
// ReadData, which is the requester-side read of a response.
func (b *Bus) takeData() (Word, bool) {
	if b.data == nil {
		return 0, false
	}
	v := *b.data
	b.data = nil
	return v, true
}

func (s busState) String() string {
	switch s {
	case busRead:
		return "Read"
	case busWrite:
		return "Write"
	}
	return "Idle"
}

// BusSnapshot is a non-consuming view of the bus for observers such as
// the debug renderer. Taking one never transfers slot ownership.
type BusSnapshot struct {
	State      string
	Address    Address
	HasAddress bool
	Data       Word
	HasData    bool
}

// Snapshot peeks at the request state and both slots without consuming
// them.
func (b *Bus) Snapshot() BusSnapshot {
	s := BusSnapshot{State: b.state.String()}
	if b.address != nil {
		s.Address, s.HasAddress = *b.address, true
	}
	if b.data != nil {
		s.Data, s.HasData = *b.data, true
	}
	return s
}
