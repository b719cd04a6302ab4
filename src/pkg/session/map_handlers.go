package session

import "mindflow/src/pkg/model"

// handleMapShow returns the current renderable scene.
func handleMapShow(s *Session, _ model.Command) (interface{}, error) {
	return s.Controller.RenderScene(), nil
}

// handleSystemExit signals the frontend to terminate.
func handleSystemExit(_ *Session, _ model.Command) (interface{}, error) {
	return nil, ErrExit
}
