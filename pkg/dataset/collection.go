package dataset

type block struct {
	leaf  *Leaf
	time  float64
	timed bool
}

// Collection is a multi-block dataset holding one leaf per time step.
//
// The time value of a block is resolved once, when the block is added. Blocks
// must not be modified afterwards.
type Collection struct {
	blocks    []block
	fieldData FieldData
}

// NewCollection creates a collection from blocks, in order.
func NewCollection(blocks ...*Leaf) *Collection {
	c := &Collection{blocks: make([]block, 0, len(blocks))}
	for _, leaf := range blocks {
		c.AddBlock(leaf)
	}

	return c
}

// AddBlock appends leaf as the next block. A nil leaf is kept as an unreadable block.
func (c *Collection) AddBlock(leaf *Leaf) {
	b := block{leaf: leaf}
	if leaf != nil {
		b.time, b.timed = leaf.timeValue()
	}

	c.blocks = append(c.blocks, b)
}

// NumberOfBlocks returns the number of blocks.
func (c *Collection) NumberOfBlocks() int { return len(c.blocks) }

// Block returns block i.
func (c *Collection) Block(i int) *Leaf { return c.blocks[i].leaf }

// BlockTime returns the time value of block i, if the block carries a readable one.
func (c *Collection) BlockTime(i int) (float64, bool) {
	return c.blocks[i].time, c.blocks[i].timed
}

// FieldData returns the collection level arrays.
func (c *Collection) FieldData() *FieldData { return &c.fieldData }

// TimeInfo returns the step type and unit stored in the "TimeInfo" array.
// ok is false when the array is missing, is not a string array or holds fewer
// than two values.
func (c *Collection) TimeInfo() (stepType, unit string, ok bool) {
	arr, found := c.fieldData.Array(TimeInfoName)
	if !found {
		return "", "", false
	}

	info, isString := arr.(*StringArray)
	if !isString || info.Len() < 2 {
		return "", "", false
	}

	return info.Value(0), info.Value(1), true
}

// Scale returns a collection whose blocks are scaled copies of the blocks of c.
func (c *Collection) Scale(s float64) *Collection {
	scaled := &Collection{
		blocks:    make([]block, len(c.blocks)),
		fieldData: c.fieldData.clone(),
	}

	for i, b := range c.blocks {
		scaled.blocks[i] = b
		if b.leaf != nil {
			scaled.blocks[i].leaf = b.leaf.Scale(s)
		}
	}

	return scaled
}

func (*Collection) isDataset() {}

var _ Dataset = (*Collection)(nil)
