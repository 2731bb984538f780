package coach

import (
	"github.com/alexanderramin/cutcoach/internal/domain"
	"github.com/alexanderramin/cutcoach/internal/llm"
)

const maxRevisionItems = domain.MaxRevisionItems

func stringList() *llm.Schema { return llm.ArrayOf(llm.String()) }

var analysisSchema = llm.Object(
	llm.Field("caseCard", llm.Object(
		llm.Field("name", llm.String()),
		llm.Field("platform", llm.String()),
		llm.Field("duration", llm.String()),
		llm.Field("targetAudience", llm.String()),
		llm.Field("learningPoints", stringList()),
		llm.Field("risks", stringList()),
	)),
	llm.Field("verdict", llm.Object(
		llm.Field("worthLearning", llm.Boolean()),
		llm.Field("reasons", stringList()),
		llm.OptionalField("alternative", llm.String()),
	)),
	llm.Field("structure", llm.ArrayOf(llm.Object(
		llm.Field("segment", llm.String()),
		llm.Field("timestamp", llm.String()),
		llm.Field("purpose", llm.String()),
		llm.Field("psychology", llm.String()),
		llm.Field("visualStrategy", llm.String()),
	))),
	llm.Field("dna", llm.Object(
		llm.Field("avgShotLength", llm.String()),
		llm.Field("pacing", llm.String()),
		llm.Field("soundStrategy", llm.String()),
	)),
	llm.Field("shotList", llm.ArrayOf(llm.Object(
		llm.Field("id", llm.Integer()),
		llm.Field("timeRange", llm.String()),
		llm.Field("duration", llm.String()),
		llm.Field("visual", llm.String()),
		llm.Field("audio", llm.String()),
		llm.Field("action", llm.String()),
	))),
	llm.Field("sop", llm.ArrayOf(llm.Object(
		llm.Field("rule", llm.String()),
		llm.Field("howTo", llm.String()),
		llm.Field("example", llm.String()),
	))),
	llm.Field("scriptTemplate", llm.Object(
		llm.Field("hook", llm.String()),
		llm.Field("setup", llm.String()),
		llm.Field("core1", llm.String()),
		llm.Field("core2", llm.String()),
		llm.Field("twist", llm.String()),
		llm.Field("cta", llm.String()),
	)),
	llm.Field("homework", llm.Object(
		llm.Field("goal", llm.String()),
		llm.Field("constraints", llm.String()),
		llm.Field("rubric", llm.ArrayOf(llm.Object(
			llm.Field("criteria", llm.String()),
			llm.Field("description", llm.String()),
			llm.Field("maxScore", llm.Number()),
		))),
	)),
)

func revisionPlanSchema() *llm.Schema {
	return llm.ArrayOf(llm.Object(
		llm.Field("problem", llm.String()),
		llm.Field("solution", llm.String()),
		llm.Field("example", llm.String()),
		llm.Field("priority", llm.Enum(domain.PriorityValues()...)),
	))
}

var reviewVideoSchema = llm.Object(
	llm.Field("score", llm.Number().Describe("1-100")),
	llm.Field("feedback", llm.String()),
	llm.Field("revisionPlan", revisionPlanSchema()),
)

var reviewScriptSchema = llm.Object(
	llm.Field("score", llm.Number().Describe("1-100")),
	llm.Field("feedback", llm.String()),
	llm.Field("revisionPlan", revisionPlanSchema()),
	llm.Field("suggestedShotList", llm.ArrayOf(llm.Object(
		llm.Field("scriptSegment", llm.String()),
		llm.Field("visualSuggestion", llm.String()),
		llm.Field("shotType", llm.String()),
		llm.Field("reasoning", llm.String()),
	))),
)
