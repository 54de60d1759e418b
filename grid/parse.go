package grid

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

var (
	reHeight   = regexp.MustCompile(`^height\s+(\d+)\s*$`)
	reWidth    = regexp.MustCompile(`^width\s+(\d+)\s*$`)
	reChannels = regexp.MustCompile(`^channels\s+(\d+)\s*$`)
	reMapLine  = regexp.MustCompile(`^map\s*$`)
)

// trimCR strips a trailing carriage return, tolerating Windows line endings.
func trimCR(line string) string {
	return strings.TrimSuffix(line, "\r")
}

// NewFromMap parses the map text format: header lines "height N", "width M",
// the literal line "map", then N lines of exactly M characters. 'T' and '@'
// mark obstacles; any other character marks a passable cell. Nodes are
// created for passable cells only, and each node's neighbour list is
// finalized in the fixed order (+y, −x, −y, +x) before NewFromMap returns.
func NewFromMap(r io.Reader) (*Grid, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var height, width int
	for sc.Scan() {
		line := trimCR(sc.Text())
		if m := reHeight.FindStringSubmatch(line); m != nil {
			height, _ = strconv.Atoi(m[1])
			continue
		}
		if m := reWidth.FindStringSubmatch(line); m != nil {
			width, _ = strconv.Atoi(m[1])
			continue
		}
		if reMapLine.MatchString(line) {
			break
		}
	}
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("%w: header must declare positive height and width", ErrBadHeader)
	}

	g := &Grid{height: height, width: width, nodes: make([]*Node, height*width)}

	row := 0
	for sc.Scan() {
		line := trimCR(sc.Text())
		if len(line) != width {
			return nil, fmt.Errorf("%w: row %d has length %d, want %d", ErrDimensionMismatch, row, len(line), width)
		}
		for x := 0; x < width; x++ {
			c := line[x]
			if c == 'T' || c == '@' {
				continue // obstacle: leave the slot nil
			}
			id := g.idOf(x, row)
			g.nodes[id] = &Node{ID: id, Pos: Pos{X: x, Y: row}}
		}
		row++
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if row != height {
		return nil, fmt.Errorf("%w: map has %d rows, want %d", ErrDimensionMismatch, row, height)
	}

	g.linkNeighbors()

	return g, nil
}

// linkNeighbors populates each Node's neighbour slice in the fixed
// enumeration order (+y, −x, −y, +x), skipping absent cells.
func (g *Grid) linkNeighbors() {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			v := g.NodeAt(x, y)
			if v == nil {
				continue
			}
			if n := g.NodeAt(x, y+1); n != nil {
				v.next = append(v.next, n)
			}
			if n := g.NodeAt(x-1, y); n != nil {
				v.next = append(v.next, n)
			}
			if n := g.NodeAt(x, y-1); n != nil {
				v.next = append(v.next, n)
			}
			if n := g.NodeAt(x+1, y); n != nil {
				v.next = append(v.next, n)
			}
		}
	}
}

// wid returns the flat index of cell (x,y) channel ch into g.weights.
func (g *Grid) wid(x, y, ch int) int {
	return (y*g.width+x)*4 + ch
}

// GenerateUniformWeights fills channels/weights with the default policy:
// every edge to a present neighbour costs 1.0, everything else is
// MaxWeight. Mirrors the reference loader's "weights file not found" path.
func (g *Grid) GenerateUniformWeights() {
	g.channels = 4
	g.weights = make([]float64, g.height*g.width*4)
	for i := range g.weights {
		g.weights[i] = MaxWeight
	}
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if !g.Exists(x, y) {
				continue
			}
			if g.Exists(x, y+1) {
				g.weights[g.wid(x, y, 0)] = 1.0
			}
			if g.Exists(x-1, y) {
				g.weights[g.wid(x, y, 1)] = 1.0
			}
			if g.Exists(x, y-1) {
				g.weights[g.wid(x, y, 2)] = 1.0
			}
			if g.Exists(x+1, y) {
				g.weights[g.wid(x, y, 3)] = 1.0
			}
		}
	}
}

// LoadWeights parses the weights text format: header "height N", "width M",
// "channels 4", then lines "x y w0 w1 w2 w3". Negative values denote
// impassable and are stored as MaxWeight. Returns ErrDimensionMismatch if
// the header disagrees with the grid, ErrChannelMismatch if channels != 4.
func (g *Grid) LoadWeights(r io.Reader) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var sawChannels bool
	for sc.Scan() {
		line := trimCR(sc.Text())
		if m := reHeight.FindStringSubmatch(line); m != nil {
			h, _ := strconv.Atoi(m[1])
			if h != g.height {
				return fmt.Errorf("%w: weights height %d != grid height %d", ErrDimensionMismatch, h, g.height)
			}
			continue
		}
		if m := reWidth.FindStringSubmatch(line); m != nil {
			w, _ := strconv.Atoi(m[1])
			if w != g.width {
				return fmt.Errorf("%w: weights width %d != grid width %d", ErrDimensionMismatch, w, g.width)
			}
			continue
		}
		if m := reChannels.FindStringSubmatch(line); m != nil {
			ch, _ := strconv.Atoi(m[1])
			if ch != 4 {
				return fmt.Errorf("%w: got %d channels", ErrChannelMismatch, ch)
			}
			sawChannels = true
			break
		}
	}
	if !sawChannels {
		return fmt.Errorf("%w: missing channels declaration", ErrBadHeader)
	}

	g.channels = 4
	g.weights = make([]float64, g.height*g.width*4)
	for i := range g.weights {
		g.weights[i] = MaxWeight
	}

	for sc.Scan() {
		line := trimCR(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 6 {
			return fmt.Errorf("%w: weight row %q does not have 6 fields", ErrDimensionMismatch, line)
		}
		x, err := strconv.Atoi(fields[0])
		if err != nil {
			return fmt.Errorf("%w: bad x in %q", ErrDimensionMismatch, line)
		}
		y, err := strconv.Atoi(fields[1])
		if err != nil {
			return fmt.Errorf("%w: bad y in %q", ErrDimensionMismatch, line)
		}
		if !g.Exists(x, y) {
			continue
		}
		for ch := 0; ch < 4; ch++ {
			v, err := strconv.ParseFloat(fields[2+ch], 64)
			if err != nil {
				return fmt.Errorf("%w: bad weight in %q", ErrDimensionMismatch, line)
			}
			if v >= 0 {
				g.weights[g.wid(x, y, ch)] = v
			}
		}
	}

	return sc.Err()
}

// WriteWeights serializes the grid's current weights in the text format
// LoadWeights understands: impassable channels are written as -1.
func (g *Grid) WriteWeights(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "height %d\nwidth %d\nchannels %d\n", g.height, g.width, g.channels); err != nil {
		return err
	}
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if !g.Exists(x, y) {
				continue
			}
			fmt.Fprintf(bw, "%d %d", x, y)
			for ch := 0; ch < 4; ch++ {
				v := g.weights[g.wid(x, y, ch)]
				if v >= MaxWeight {
					v = -1
				}
				fmt.Fprintf(bw, " %g", v)
			}
			fmt.Fprintln(bw)
		}
	}

	return bw.Flush()
}
