package vcolor

// SessionState tracks how many gradient endpoints have been placed.
type SessionState int

const (
	// SessionIdle means no endpoint has been placed yet.
	SessionIdle SessionState = iota
	// SessionFirstPlaced means the start point is down and the end point
	// is still being positioned.
	SessionFirstPlaced
	// SessionBothPlaced means both endpoints are down and the gradient
	// previews live on the mesh.
	SessionBothPlaced
)

// GradientSession drives an interactive gradient: callers feed it
// endpoint placements and parameter changes, and the session keeps the
// mesh showing the current preview by restoring a snapshot taken at
// start and repainting. Confirm keeps the last preview, Cancel restores
// the snapshot.
type GradientSession struct {
	mesh   Mesh
	saved  []RGBA
	state  SessionState
	done   bool
	params Gradient
}

// BeginGradientSession snapshots the active attribute and starts an idle
// session with the given initial parameters.
func BeginGradientSession(m Mesh, params Gradient) (*GradientSession, error) {
	saved, err := SaveColors(m)
	if err != nil {
		return nil, err
	}
	return &GradientSession{mesh: m, saved: saved, params: params}, nil
}

// State returns the session's current placement state.
func (s *GradientSession) State() SessionState { return s.state }

// Params returns the session's current gradient parameters.
func (s *GradientSession) Params() Gradient { return s.params }

func (s *GradientSession) finished() error {
	if s.done {
		return ctxErrorf("gradient session already finished")
	}
	return nil
}

// PlacePoint pins the next endpoint. The first call sets the start
// point, the second sets the end point and paints the first preview.
// Further calls reposition the end point.
func (s *GradientSession) PlacePoint(p Vec3) error {
	if err := s.finished(); err != nil {
		return err
	}
	switch s.state {
	case SessionIdle:
		s.params.Start = p
		s.state = SessionFirstPlaced
		return nil
	case SessionFirstPlaced:
		s.params.End = p
		s.state = SessionBothPlaced
	default:
		s.params.End = p
	}
	return s.repaint()
}

// StepBack un-places the most recent endpoint. Stepping back from a live
// preview restores the snapshot.
func (s *GradientSession) StepBack() error {
	if err := s.finished(); err != nil {
		return err
	}
	switch s.state {
	case SessionBothPlaced:
		s.state = SessionFirstPlaced
		return RestoreColors(s.mesh, s.saved)
	case SessionFirstPlaced:
		s.state = SessionIdle
	}
	return nil
}

// Update replaces the gradient parameters, keeping the endpoints already
// placed, and refreshes the preview if one is showing.
func (s *GradientSession) Update(params Gradient) error {
	if err := s.finished(); err != nil {
		return err
	}
	params.Start = s.params.Start
	params.End = s.params.End
	s.params = params
	if s.state != SessionBothPlaced {
		return nil
	}
	return s.repaint()
}

// Confirm ends the session keeping the current preview on the mesh. It
// fails unless both endpoints are placed.
func (s *GradientSession) Confirm() error {
	if err := s.finished(); err != nil {
		return err
	}
	if s.state != SessionBothPlaced {
		return ctxErrorf("gradient endpoints not placed")
	}
	s.done = true
	return nil
}

// Cancel restores the snapshot and ends the session.
func (s *GradientSession) Cancel() error {
	if err := s.finished(); err != nil {
		return err
	}
	s.done = true
	if s.state == SessionBothPlaced {
		return RestoreColors(s.mesh, s.saved)
	}
	return nil
}

func (s *GradientSession) repaint() error {
	if err := RestoreColors(s.mesh, s.saved); err != nil {
		return err
	}
	return PaintGradient(s.mesh, s.params)
}
