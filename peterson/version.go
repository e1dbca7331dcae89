package peterson

// Version information for the Peterson lock library.
const (
	// Version is the current library version.
	Version = "0.1.0"
)

// Info provides runtime information about the lock implementation.
type Info struct {
	// Version is the library version string.
	Version string

	// Algorithm names the mutual-exclusion algorithm implemented.
	Algorithm string

	// Participants is the number of contenders the algorithm supports.
	Participants int
}

// GetInfo returns information about the lock implementation.
//
// Example:
//
//	info := peterson.GetInfo()
//	fmt.Printf("%s lock, %d participants (v%s)\n",
//		info.Algorithm, info.Participants, info.Version)
func GetInfo() Info {
	return Info{
		Version:      Version,
		Algorithm:    "Peterson (1981)",
		Participants: NumParticipants,
	}
}
