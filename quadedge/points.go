package quadedge

// AddPoint appends a new, initially isolated point and returns its handle.
func (m *Mesh) AddPoint(x, y, z float64) PointID {
	id := PointID(len(m.points))
	m.points = append(m.points, pointRecord{X: x, Y: y, Z: z, Edge: NoEdge})
	m.pointAlive = append(m.pointAlive, true)
	return id
}

// GetPoint returns the point stored at id.
func (m *Mesh) GetPoint(id PointID) (Point, error) {
	if id == NoPoint || int(id) >= len(m.points) || !m.pointAlive[id] {
		return Point{}, ErrPointNotFound
	}
	r := m.points[id]
	return Point{X: r.X, Y: r.Y, Z: r.Z}, nil
}

// SetPoint overwrites the coordinates of a live point, preserving its edge
// hint.
func (m *Mesh) SetPoint(id PointID, x, y, z float64) error {
	if id == NoPoint || int(id) >= len(m.points) || !m.pointAlive[id] {
		return ErrPointNotFound
	}
	m.points[id].X, m.points[id].Y, m.points[id].Z = x, y, z
	return nil
}

// DeletePoint tombstones id. Callers must have already detached every edge
// incident to id (JoinVertex's merge leaves the collapsed point with no
// remaining edges before calling this).
func (m *Mesh) DeletePoint(id PointID) error {
	if id == NoPoint || int(id) >= len(m.points) || !m.pointAlive[id] {
		return ErrPointNotFound
	}
	m.pointAlive[id] = false
	m.points[id].Edge = NoEdge
	return nil
}

// PointAlive reports whether id names a live point.
func (m *Mesh) PointAlive(id PointID) bool {
	return id != NoPoint && int(id) < len(m.pointAlive) && m.pointAlive[id]
}

// FindEdgeAt returns a directed edge whose Origin is id, or NoEdge if id is
// absent or isolated.
func (m *Mesh) FindEdgeAt(id PointID) EdgeID {
	if !m.PointAlive(id) {
		return NoEdge
	}
	return m.points[id].Edge
}

// FindEdgeBetween returns the directed edge a->b if one exists, or NoEdge.
//
// Complexity: O(degree(a)).
func (m *Mesh) FindEdgeBetween(a, b PointID) EdgeID {
	start := m.FindEdgeAt(a)
	if start == NoEdge {
		return NoEdge
	}
	for _, e := range m.OriginRing(start) {
		if m.Destination(e) == b {
			return e
		}
	}
	return NoEdge
}
