package grammar

import "strings"

// Cursor представляет собой позицию в окне входного текста.
// Все правила грамматики работают через него: байтовый просмотр вперёд,
// потребление и откат к метке.
type Cursor struct {
	input string
	off   uint32
	// limit is the exclusive upper bound for off.
	limit uint32
}

// newCursor opens a window over input[start:end). Offsets stay absolute so
// spans can be built directly from cursor positions.
func newCursor(input string, start, end uint32) Cursor {
	return Cursor{input: input, off: start, limit: end}
}

// EOF проверяет, достигнут ли конец окна
func (c *Cursor) EOF() bool {
	return c.off >= c.limit
}

// Peek читает текущий байт, если есть, иначе возвращает 0
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.input[c.off]
}

// Bump перемещает курсор на один байт вперед и возвращает прочитанный байт
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.input[c.off]
	c.off++
	return b
}

// Eat consumes the next byte if it matches the provided byte.
func (c *Cursor) Eat(b byte) bool {
	if !c.EOF() && c.input[c.off] == b {
		c.off++
		return true
	}
	return false
}

// EatRun consumes a maximal run of the provided byte and returns its length.
func (c *Cursor) EatRun(b byte) uint32 {
	var n uint32
	for c.Eat(b) {
		n++
	}
	return n
}

// StartsWith reports whether the unconsumed window begins with s.
func (c *Cursor) StartsWith(s string) bool {
	if c.off+uint32(len(s)) > c.limit {
		return false
	}
	return strings.HasPrefix(c.input[c.off:c.limit], s)
}

// EatString consumes s if the window begins with it.
func (c *Cursor) EatString(s string) bool {
	if !c.StartsWith(s) {
		return false
	}
	c.off += uint32(len(s))
	return true
}

// Off returns the absolute offset of the cursor.
func (c *Cursor) Off() uint32 {
	return c.off
}

// Mark это метка, что бы быстро получать срез прочитанного фрагмента
type Mark uint32

// Mark сохраняет текущую позицию курсора
func (c *Cursor) Mark() Mark {
	return Mark(c.off)
}

// Reset возвращает курсор назад к метке
func (c *Cursor) Reset(m Mark) {
	c.off = uint32(m)
}

// Slice returns the input between the mark and the cursor.
func (c *Cursor) Slice(m Mark) string {
	return c.input[uint32(m):c.off]
}
