package byteproc

// Clock counts the number of ticks a Machine has executed. It exists as
// its own type, separate from Machine, because the reference design
// keeps timekeeping independent of the devices it drives.
type Clock struct {
	ticks uint64
}

// Ticks returns the number of completed ticks.
func (c *Clock) Ticks() uint64 { return c.ticks }

func (c *Clock) advance() { c.ticks++ }

const (
	defaultRegisterCount = 8
	defaultMemorySize    = 256
	defaultCycleLimit    = 100000
)

// Machine wires a CPU, Memory, and Bus together and drives them in
// lockstep: each Tick runs the CPU's state-machine step, then the
// memory's bus-servicing step, then advances the clock. CPU-then-memory
// ordering means a request dispatched on tick t is serviced within the
// same tick and observed by the CPU on tick t+1.
type Machine struct {
	CPU    *CPU
	Memory *Memory
	Bus    *Bus
	Clock  Clock

	cycleLimit uint64
}

// Option configures a Machine at construction time.
type Option func(*machineConfig)

type machineConfig struct {
	registerCount int
	memorySize    int
	cycleLimit    uint64
}

// WithRegisterCount overrides the default number of general-purpose
// registers.
func WithRegisterCount(n int) Option {
	return func(c *machineConfig) { c.registerCount = n }
}

// WithMemorySize overrides the default memory block size, in words.
func WithMemorySize(n int) Option {
	return func(c *machineConfig) { c.memorySize = n }
}

// WithCycleLimit overrides the default maximum number of ticks Run will
// execute before stopping, as a guard against non-terminating programs.
// It is not a simulated fault: reaching the limit ends Run cleanly.
func WithCycleLimit(n uint64) Option {
	return func(c *machineConfig) { c.cycleLimit = n }
}

// NewMachine constructs a Machine with a fresh CPU, Memory, and Bus.
// Programs must be loaded into Memory (see the asm package) before
// calling Run or Tick.
func NewMachine(opts ...Option) *Machine {
	cfg := machineConfig{
		registerCount: defaultRegisterCount,
		memorySize:    defaultMemorySize,
		cycleLimit:    defaultCycleLimit,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Machine{
		CPU:        NewCPU(cfg.registerCount, cfg.memorySize),
		Memory:     NewMemory(cfg.memorySize),
		Bus:        &Bus{},
		cycleLimit: cfg.cycleLimit,
	}
}

// Tick advances the machine by exactly one tick: the CPU acts on the
// bus, then the memory services whatever the CPU placed there, then the
// clock advances.
func (m *Machine) Tick() error {
	if err := m.CPU.Step(m.Bus); err != nil {
		return err
	}
	if err := m.Memory.Cycle(m.Bus); err != nil {
		return err
	}
	m.Clock.advance()
	return nil
}

// Run ticks the machine until the CPU halts, an error occurs, or the
// cycle limit is reached. Reaching the cycle limit is not an error: Run
// returns nil and the caller can inspect m.CPU.Halted() to tell the two
// cases apart.
func (m *Machine) Run() error {
	for !m.CPU.Halted() && m.Clock.Ticks() < m.cycleLimit {
		if err := m.Tick(); err != nil {
			return err
		}
	}
	return nil
}
