package point

import (
	"errors"
	"math"
	"strconv"
)

// ErrMalformedRecord indicates a record is not three comma-separated
// non-negative integers within range.
var ErrMalformedRecord = errors.New("point: malformed record")

// MaxCoordinate is the largest accepted coordinate value.
const MaxCoordinate = math.MaxInt32

// Point is a location in 3D integer space.
type Point struct {
	X, Y, Z uint32
}

// New returns the Point (x, y, z).
func New(x, y, z uint32) Point {
	return Point{X: x, Y: y, Z: z}
}

// String renders p as "x,y,z", the same form Parse accepts.
func (p Point) String() string {
	b := make([]byte, 0, 32)
	b = strconv.AppendUint(b, uint64(p.X), 10)
	b = append(b, ',')
	b = strconv.AppendUint(b, uint64(p.Y), 10)
	b = append(b, ',')
	b = strconv.AppendUint(b, uint64(p.Z), 10)

	return string(b)
}

// SquaredDistance returns the exact squared Euclidean distance between a and b.
// It cannot overflow for coordinates within MaxCoordinate.
func SquaredDistance(a, b Point) uint64 {
	dx := absDiff(a.X, b.X)
	dy := absDiff(a.Y, b.Y)
	dz := absDiff(a.Z, b.Z)

	return dx*dx + dy*dy + dz*dz
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return math.Sqrt(float64(SquaredDistance(a, b)))
}

func absDiff(a, b uint32) uint64 {
	if a > b {
		return uint64(a - b)
	}

	return uint64(b - a)
}
