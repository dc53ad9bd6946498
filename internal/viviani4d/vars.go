package viviani4d

var (
	Debug     = false // set to true for verbose debug output
	SkipExact = false // set to true to skip exact (rational) validation of built surfaces
	PNG       = false // set to true to also save 16-bit PNG sequences of animations
	// Compile time checks for projector implementations
	_ Projector = (*Orthogonal)(nil)
	_ Projector = (*Perspective)(nil)
	_ Projector = (*Stereographic)(nil)
)
