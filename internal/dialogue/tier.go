// Package dialogue implements the cost-tiered generation policy: a rule
// engine that picks TEMPLATE, LOCAL, or CLOUD for a dialogue request, and the
// template engine TEMPLATE falls back to. Grounded on the teacher's
// internal/ai/dialogue package for the request/response struct shape and
// internal/ai/degradation for the tier-constant naming idiom, with the
// externally observable names (TEMPLATE/LOCAL/CLOUD) taken from the spec
// rather than the teacher's Tier1/Tier2/Tier3.
package dialogue

// Tier identifies which dialogue generator should handle a request.
type Tier string

const (
	// TierTemplate is the zero-cost lookup-table fallback.
	TierTemplate Tier = "TEMPLATE"
	// TierLocal is a locally hosted language model.
	TierLocal Tier = "LOCAL"
	// TierCloud is the remote, highest-cost language model; this core only
	// produces the routing decision and the assembled prompt context, never
	// the invocation itself (spec §1).
	TierCloud Tier = "CLOUD"
)

// Request carries the fields the tier policy branches on.
type Request struct {
	PlayerInitiated   bool
	Importance        float64
	IsQuestCritical   bool
	TurnCount         int
	LocalLLMAvailable bool
}

// importanceCloudThreshold and turnCountCloudThreshold gate the CLOUD
// escalation in SelectTier's second branch.
const (
	importanceCloudThreshold = 0.8
	turnCountCloudThreshold  = 3
)

// SelectTier applies the four-branch policy of spec §4.14, in order:
// non-player-initiated always falls back to TEMPLATE; a sufficiently
// important, quest-critical, or long-running conversation always escalates
// to CLOUD regardless of local availability; otherwise LOCAL is used when
// available, and CLOUD is the final fallback.
func SelectTier(r Request) Tier {
	if !r.PlayerInitiated {
		return TierTemplate
	}
	if r.Importance >= importanceCloudThreshold || r.IsQuestCritical || r.TurnCount >= turnCountCloudThreshold {
		return TierCloud
	}
	if r.LocalLLMAvailable {
		return TierLocal
	}
	return TierCloud
}
