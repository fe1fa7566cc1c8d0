package pattern

// Pattern identifiers. Each id names one family at one tier; the
// reconciler's dedup pass guarantees at most one find per id survives
// a detection run. Length-tiered families cap the length component of
// the id at the family's top threshold.
const (
	IDPair   = "pair"
	IDTriple = "triple"
	IDQuad   = "quad"

	IDSuited3 = "suited-3"
	IDSuited4 = "suited-4"
	IDSuited5 = "suited-5"
	IDSuited6 = "suited-6"
	IDSuited7 = "suited-7"
	IDSuited8 = "suited-8"

	IDRun3     = "run-3"
	IDRun4     = "run-4"
	IDStraight = "straight"
	IDRun6     = "run-6"
	IDRun7     = "run-7"

	IDColor6  = "color-6"
	IDColor8  = "color-8"
	IDColor10 = "color-10"

	IDAlternating7  = "alternating-7"
	IDAlternating10 = "alternating-10"

	IDBlackjack        = "blackjack"
	IDSuitedBlackjack  = "suited-blackjack"
	IDPerfectBlackjack = "perfect-blackjack"

	IDNPairs     = "n-pairs"
	IDTwoTriples = "two-triples"
	IDTwoQuads   = "two-quads"

	IDMirror        = "mirror"
	IDTwoPair       = "two-pair"
	IDFullHouse     = "full-house"
	IDStraightFlush = "straight-flush"
	IDRoyalFlush    = "royal-flush"
	IDDeadMansHand  = "dead-mans-hand"
	IDSolitaireRun  = "solitaire-run"
	IDAceHigh       = "ace-high"
	IDAscendingFive = "ascending-five"
	IDFactoryRun    = "factory-run"
)

// Find is one detected pattern instance. Detectors emit finds with ID
// and Positions set, plus Name when the display name carries run
// details (rank, length, count); the orchestrator resolves the rest
// from the catalogue. Finds live for one detection run only.
type Find struct {
	ID        string
	Name      string
	Icon      string
	Tier      Tier
	Positions []int
	IsNew     bool
}
