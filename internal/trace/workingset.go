package trace

// workingSet is the mutable set of coordinates still awaiting tracing.
//
// When a grid cell size is configured it also maintains a bucket index:
// bucket[gy][gx] holds the subset of points falling in that cell. The set
// and the index are updated together in remove, so the union of all
// buckets equals the authoritative set at every point in time.
type workingSet struct {
	points map[Point]struct{}

	// bucket index, nil when indexing is disabled
	cellW, cellH int
	buckets      [][]map[Point]struct{}
}

// newWorkingSet builds the set from the classifier output, collapsing
// duplicates from overlapping passes. cellW/cellH of 0 disable indexing.
func newWorkingSet(pts []Point, width, height, cellW, cellH int) *workingSet {
	s := &workingSet{points: make(map[Point]struct{}, len(pts))}
	for _, p := range pts {
		s.points[p] = struct{}{}
	}
	if cellW > 0 && cellH > 0 {
		cols := width/cellW + 1
		rows := height/cellH + 1
		s.cellW, s.cellH = cellW, cellH
		s.buckets = make([][]map[Point]struct{}, rows)
		for gy := range s.buckets {
			s.buckets[gy] = make([]map[Point]struct{}, cols)
			for gx := range s.buckets[gy] {
				s.buckets[gy][gx] = make(map[Point]struct{})
			}
		}
		for p := range s.points {
			b := s.bucketOf(p)
			b[p] = struct{}{}
		}
	}
	return s
}

func (s *workingSet) indexed() bool { return s.buckets != nil }

func (s *workingSet) bucketOf(p Point) map[Point]struct{} {
	return s.buckets[p.Y/s.cellH][p.X/s.cellW]
}

func (s *workingSet) size() int { return len(s.points) }

func (s *workingSet) contains(p Point) bool {
	_, ok := s.points[p]
	return ok
}

// remove deletes p from the authoritative set and, when indexed, from its
// bucket in the same operation.
func (s *workingSet) remove(p Point) {
	delete(s.points, p)
	if s.indexed() {
		delete(s.bucketOf(p), p)
	}
}

// nearest returns the point minimizing Manhattan distance to origin, with
// ties broken by ascending X then ascending Y. When indexed, only the
// bucket containing origin is scanned; if that bucket is empty the search
// falls back to the full set. The bucket-local answer may not be the
// global nearest once neighboring buckets hold closer points, which is an
// accepted approximation.
func (s *workingSet) nearest(origin Point) Point {
	if s.indexed() {
		if b := s.bucketOf(origin); len(b) > 0 {
			return nearestIn(b, origin)
		}
	}
	return nearestIn(s.points, origin)
}

func nearestIn(set map[Point]struct{}, origin Point) Point {
	var best Point
	bestDist := -1
	for p := range set {
		d := abs(origin.X-p.X) + abs(origin.Y-p.Y)
		if bestDist < 0 || d < bestDist ||
			(d == bestDist && (p.X < best.X || (p.X == best.X && p.Y < best.Y))) {
			best, bestDist = p, d
		}
	}
	return best
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
