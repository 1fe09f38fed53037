package emulator

// maxCsiParam caps numeric parameter accumulation, matching xterm's limit.
// Digits past the cap saturate instead of overflowing.
const maxCsiParam = 16384

// CsiCommand is a control sequence being accumulated by the parser: numeric
// parameters, intermediate bytes (0x20-0x2F) and the final byte that selects
// the action. Private marks sequences introduced with a 0x3C-0x3F marker.
type CsiCommand struct {
	Params        []int
	Intermediates []byte
	Final         byte
	Private       bool
}

// Param returns the parameter at index, or def when absent
func (c *CsiCommand) Param(index, def int) int {
	if index < len(c.Params) {
		return c.Params[index]
	}
	return def
}

// Param1 returns the first parameter as a count: omitted or zero means one
// (xterm convention)
func (c *CsiCommand) Param1() int {
	if v := c.Param(0, 1); v > 0 {
		return v
	}
	return 1
}

// Param2 returns the second parameter as a count, defaulting to 1
func (c *CsiCommand) Param2() int {
	if v := c.Param(1, 1); v > 0 {
		return v
	}
	return 1
}

// accumulate folds a digit into the last parameter, saturating at maxCsiParam
func (c *CsiCommand) accumulate(digit byte) {
	if len(c.Params) == 0 {
		c.Params = append(c.Params, int(digit-'0'))
		return
	}
	v := c.Params[len(c.Params)-1]*10 + int(digit-'0')
	if v > maxCsiParam {
		v = maxCsiParam
	}
	c.Params[len(c.Params)-1] = v
}

// hasIntermediate reports whether b was collected as an intermediate byte
func (c *CsiCommand) hasIntermediate(b byte) bool {
	for _, i := range c.Intermediates {
		if i == b {
			return true
		}
	}
	return false
}

// OscCommand is a completed operating system command: its number and the
// string payload that followed it
type OscCommand struct {
	Number int
	Data   string
}
