// Command trapmap builds a trapezoidal map from segments read on stdin and
// reports its size, optionally locating query points afterward.
//
// Input is newline-separated "x1 y1 x2 y2" segments. Segments are shuffled
// before insertion, mirroring the randomized incremental construction the
// underlying algorithm expects; a non-random input order still works but
// loses the expected O(log n) query bound.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/simoseu/trapezoidalmap"
	"github.com/simoseu/trapezoidalmap/geometry"
)

type pointFlags []geometry.Point

func (p *pointFlags) String() string {
	return fmt.Sprint(*p)
}

func (p *pointFlags) Set(value string) error {
	parts := strings.Split(value, ",")
	if len(parts) != 2 {
		return fmt.Errorf("-query expects \"x,y\", got %q", value)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return err
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return err
	}
	*p = append(*p, geometry.Point{X: x, Y: y})
	return nil
}

func main() {
	var queries pointFlags
	flag.Var(&queries, "query", "point \"x,y\" to locate after the map is built; may be repeated")
	flag.Parse()

	segments := readSegments(os.Stdin)
	rand.Shuffle(len(segments), func(i, j int) {
		segments[i], segments[j] = segments[j], segments[i]
	})

	builder := trapezoidalmap.NewBuilder()
	for _, seg := range segments {
		if err := builder.Insert(seg); err != nil {
			fmt.Fprintf(os.Stderr, "insert %v: %v\n", seg, err)
			os.Exit(1)
		}
	}

	fmt.Printf("Inserted %d segments into %d trapezoids\n", builder.NumSegments(), builder.NumTrapezoids())

	for _, q := range queries {
		trap, err := builder.Locate(q)
		if err != nil {
			fmt.Fprintf(os.Stderr, "locate %v: %v\n", q, err)
			continue
		}
		fmt.Printf("%v -> trapezoid [%v, %v] x [%v, %v]\n", q, trap.LeftPt, trap.RightPt, trap.BottomSeg, trap.TopSeg)
	}
}

func readSegments(in *os.File) []geometry.Segment {
	var segments []geometry.Segment
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) != 4 {
			fmt.Fprintf(os.Stderr, "skipping malformed line %q\n", line)
			continue
		}
		x1, _ := strconv.ParseFloat(parts[0], 64)
		y1, _ := strconv.ParseFloat(parts[1], 64)
		x2, _ := strconv.ParseFloat(parts[2], 64)
		y2, _ := strconv.ParseFloat(parts[3], 64)
		segments = append(segments, geometry.Segment{
			P1: geometry.Point{X: x1, Y: y1},
			P2: geometry.Point{X: x2, Y: y2},
		})
	}
	return segments
}
