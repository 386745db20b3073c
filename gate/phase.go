package gate

// Phase tags every push a Provider makes to its Anchor with the reason for it.
type Phase uint8

const (
	Mount Phase = iota
	Update
	Unmount
)

func (p Phase) String() string {
	switch p {
	case Mount:
		return "mount"
	case Update:
		return "update"
	case Unmount:
		return "unmount"
	default:
		return "unknown"
	}
}

// State is where a Provider sits in its own lifecycle.
type State uint8

const (
	Unattached State = iota
	Mounted
	Unmounted
)

func (s State) String() string {
	switch s {
	case Unattached:
		return "unattached"
	case Mounted:
		return "mounted"
	case Unmounted:
		return "unmounted"
	default:
		return "unknown"
	}
}
