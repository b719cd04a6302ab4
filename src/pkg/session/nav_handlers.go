package session

import "mindflow/src/pkg/model"

// Navigation handlers move the active marker within existing structure.
// Navigation past a structural boundary is a no-op, never an error.

func handleNavParent(s *Session, _ model.Command) (interface{}, error) {
	return s.Controller.MoveToParent(), nil
}

func handleNavFirst(s *Session, _ model.Command) (interface{}, error) {
	return s.Controller.MoveToFirstChild(), nil
}

func handleNavNext(s *Session, _ model.Command) (interface{}, error) {
	return s.Controller.MoveToNextSibling(), nil
}

func handleNavPrev(s *Session, _ model.Command) (interface{}, error) {
	return s.Controller.MoveToPreviousSibling(), nil
}
