package domain

// Report is an ordered sequence of layout blocks rendered top to bottom
type Report struct {
	Title  string
	Blocks []Block
}

// Block is one visual unit of a Report
type Block interface {
	block()
}

type TitleBlock struct {
	Text string
}

type HeadingBlock struct {
	Text string
}

type ParagraphBlock struct {
	Text string
}

// SpacerBlock adds vertical space, in points
type SpacerBlock struct {
	Height float64
}

// TableBlock is a gridded table whose first row is the header
type TableBlock struct {
	Header []string
	Rows   [][]string
}

// ImageBlock places a raster image scaled to Width x Height points
type ImageBlock struct {
	Path   string
	Width  float64
	Height float64
}

func (TitleBlock) block()     {}
func (HeadingBlock) block()   {}
func (ParagraphBlock) block() {}
func (SpacerBlock) block()    {}
func (TableBlock) block()     {}
func (ImageBlock) block()     {}
