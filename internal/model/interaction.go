package model

// InteractionState is either Idle (no origin) or Armed(Origin, Legal).
// Click selection and drag grabs share this one representation.
type InteractionState struct {
	Origin string    `json:"origin,omitempty"`
	Legal  SquareSet `json:"-"`
}

func Idle() InteractionState {
	return InteractionState{}
}

func Armed(origin string, legal SquareSet) InteractionState {
	if legal == nil {
		legal = SquareSet{}
	}
	return InteractionState{Origin: origin, Legal: legal}
}

func (s InteractionState) IsIdle() bool {
	return s.Origin == ""
}

func (s InteractionState) IsLegal(square string) bool {
	return !s.IsIdle() && s.Legal.Has(square)
}
