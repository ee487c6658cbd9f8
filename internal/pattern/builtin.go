package pattern

// builtinRules returns a small, illustrative compiled pattern table.
//
// A full pattern-file corpus (hundreds of hand-tuned local patterns) is
// out of scope; these rules exist to exercise the matcher end-to-end
// with a few sound, simple, board-size-independent facts. The heavy
// lifting of proving dead/vulnerable cells in practice is carried by
// the graph-theoretic rules in package ice (clique families,
// simplicial/presimplicial detection, edge unreachability), which don't
// depend on an external pattern corpus.
func builtinRules() []*Rule {
	return []*Rule{
		{
			Kind: KindDead,
			Name: "fully-surrounded",
			Ring: [6]Slot{MustOccupied, MustOccupied, MustOccupied, MustOccupied, MustOccupied, MustOccupied},
		},
		{
			Kind: KindCaptured,
			Name: "flanked-pair",
			Ring: [6]Slot{MustOwn, MustOwn, Any, Any, Any, Any},
		},
		{
			Kind:         KindPermanentlyInferior,
			Name:         "single-own-opposite-empty",
			Ring:         [6]Slot{MustOwn, Any, Any, MustEmpty, Any, Any},
			CarrierSlots: []int{3},
		},
		{
			Kind:         KindVulnerable,
			Name:         "own-then-empty-killer",
			Ring:         [6]Slot{MustOwn, MustEmpty, MustEmpty, Any, Any, Any},
			KillerSlot:   1,
			CarrierSlots: []int{2},
		},
		{
			Kind:         KindReversible,
			Name:         "pair-with-reverser",
			Ring:         [6]Slot{MustOwn, MustOwn, MustEmpty, Any, Any, Any},
			KillerSlot:   2,
			CarrierSlots: []int{2},
		},
		{
			Kind:         KindDominated,
			Name:         "pair-with-dominator",
			Ring:         [6]Slot{MustOwn, MustOwn, MustEmpty, MustEmpty, Any, Any},
			KillerSlot:   2,
			CarrierSlots: []int{3},
		},
	}
}
