package model

// Category is one of the six fixed business-health dimensions. Its string
// value is the label used by the diagnosis question battery; the persisted
// health-index column names are derived via Axis. Keeping both namespaces on
// one type is deliberate: every translation between them goes through the
// methods below, never through ad-hoc string maps.
type Category string

const (
	CategoryAsset   Category = "asset"
	CategoryTime    Category = "time"
	CategoryBody    Category = "body"
	CategoryEmotion Category = "emotion"
	CategoryNetwork Category = "network"
	CategorySystem  Category = "system"
)

// Categories lists all six categories in declaration order. This order is the
// tie-break priority when quests are sequenced by score.
var Categories = []Category{
	CategoryAsset,
	CategoryTime,
	CategoryBody,
	CategoryEmotion,
	CategoryNetwork,
	CategorySystem,
}

// Valid reports whether c is one of the six known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryAsset, CategoryTime, CategoryBody, CategoryEmotion, CategoryNetwork, CategorySystem:
		return true
	}
	return false
}

// Axis returns the health-index field name for the category.
func (c Category) Axis() string {
	switch c {
	case CategoryAsset:
		return "asset_stability"
	case CategoryTime:
		return "time_independence"
	case CategoryBody:
		return "physical_condition"
	case CategoryEmotion:
		return "emotional_balance"
	case CategoryNetwork:
		return "network_power"
	case CategorySystem:
		return "system_leverage"
	}
	return string(c)
}

// DisplayName returns the human-readable axis label used in oracle prompts.
func (c Category) DisplayName() string {
	switch c {
	case CategoryAsset:
		return "Asset Stability"
	case CategoryTime:
		return "Time Independence"
	case CategoryBody:
		return "Physical Condition"
	case CategoryEmotion:
		return "Emotional Balance"
	case CategoryNetwork:
		return "Network Power"
	case CategorySystem:
		return "System Leverage"
	}
	return string(c)
}

// QuestTitle returns the fixed title for the category's improvement quest.
func (c Category) QuestTitle() string {
	switch c {
	case CategoryAsset:
		return "Asset Stability Check-In"
	case CategoryTime:
		return "Time Independence Check-In"
	case CategoryBody:
		return "Physical Condition Check-In"
	case CategoryEmotion:
		return "Emotional Balance Check-In"
	case CategoryNetwork:
		return "Network Power Check-In"
	case CategorySystem:
		return "System Leverage Check-In"
	}
	return string(c)
}

// EmpathyContext returns the canned emotional framing handed to the oracle
// when a checklist is generated for this category.
func (c Category) EmpathyContext() string {
	switch c {
	case CategoryAsset:
		return "feeling anxious. Before falling asleep, the thought \"what if my income suddenly stopped tomorrow?\" sometimes crosses their mind."
	case CategoryTime:
		return "being chased by the clock. \"When will I ever get some breathing room?\" Every day just feels busy."
	case CategoryBody:
		return "physically worn down. \"Is it okay to keep running like this?\" They worry they may be ignoring the signals their body is sending."
	case CategoryEmotion:
		return "emotionally shaken. \"Is it only me who finds this hard?\" Thoughts like that wear them out from time to time."
	case CategoryNetwork:
		return "short on allies. \"Is there anyone who would truly be on my side?\" At times they feel like they are doing this alone."
	case CategorySystem:
		return "repeating the same work over and over. \"How long do I have to do this by hand?\" They sense there must be a more efficient way but feel stuck."
	}
	return "working hard on their growth."
}
