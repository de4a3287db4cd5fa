package canvas

// CharacterMerger decides which rune a cell shows when two drawings overlap.
type CharacterMerger struct {
	rules map[[2]rune]rune
}

// NewCharacterMerger creates a merger with the box-drawing junction rules.
func NewCharacterMerger() *CharacterMerger {
	m := &CharacterMerger{rules: make(map[[2]rune]rune)}

	m.add('─', '│', '┼')
	m.add('═', '│', '╪')
	m.add('─', '║', '╫')

	// A line running into a box corner turns it into a T.
	m.add('┌', '─', '┬')
	m.add('┐', '─', '┬')
	m.add('└', '─', '┴')
	m.add('┘', '─', '┴')
	m.add('┌', '│', '├')
	m.add('└', '│', '├')
	m.add('┐', '│', '┤')
	m.add('┘', '│', '┤')

	// A crossing line turns a T into a cross.
	m.add('┬', '│', '┼')
	m.add('┴', '│', '┼')
	m.add('├', '─', '┼')
	m.add('┤', '─', '┼')

	m.add('┌', '┘', '┼')
	m.add('┐', '└', '┼')
	m.add('┌', '┐', '┬')
	m.add('└', '┘', '┴')
	m.add('┌', '└', '├')
	m.add('┐', '┘', '┤')

	m.add('-', '|', '+')
	m.add('+', '-', '+')
	m.add('+', '|', '+')
	return m
}

// add registers a rule in both orders.
func (m *CharacterMerger) add(a, b, merged rune) {
	m.rules[[2]rune{a, b}] = merged
	m.rules[[2]rune{b, a}] = merged
}

// Merge returns the rune to show when r is drawn over existing. Arrows
// always win; unknown combinations keep the existing rune.
func (m *CharacterMerger) Merge(existing, r rune) rune {
	switch {
	case existing == ' ' || existing == 0:
		return r
	case existing == r:
		return existing
	case isArrow(existing):
		return existing
	case isArrow(r):
		return r
	}
	if merged, ok := m.rules[[2]rune{existing, r}]; ok {
		return merged
	}
	return existing
}

func isArrow(r rune) bool {
	switch r {
	case '▶', '◀', '▲', '▼', '>', '<', '^', 'v':
		return true
	}
	return false
}

// IsLine reports whether r is a line, corner, junction or arrow rune.
func IsLine(r rune) bool {
	switch r {
	case '─', '│', '═', '║', '-', '|', '+', '·', '*',
		'┌', '┐', '└', '┘', '├', '┤', '┬', '┴', '┼',
		'╭', '╮', '╰', '╯', '╔', '╗', '╚', '╝', '╪', '╫':
		return true
	}
	return isArrow(r)
}
