package orchestrator

import "time"

// Log prefixes
const (
	LogPrefixHandleQuery  = "internal.agent.orchestrator.HandleQuery"
	LogPrefixResolveTrip  = "internal.agent.orchestrator.resolveTrip"
	LogPrefixPersist      = "internal.agent.orchestrator.persist"
	LogPrefixHistory      = "internal.agent.orchestrator.History"
	LogPrefixClearHistory = "internal.agent.orchestrator.ClearHistory"
)

// Confidence reported in the envelope.
const (
	ConfidenceMatched  = 0.9
	ConfidenceFallback = 0.5
)

// User-facing texts
const (
	ApologyText      = "抱歉，我暂时无法回答您的问题。请稍后再试或提供更多信息。"
	ErrMsgInternal   = "处理请求时发生内部错误"
	ErrMsgNoHandler  = "暂时没有可用的助手处理该问题"
	ErrMsgUnexpected = "助手未能生成回复"
)

// Trip summary
const (
	TripSummarySeparator   = "；"
	InterestSeparator      = "、"
	TripSummaryDestination = "目的地: %s"
	TripSummaryDates       = "日期: %s 至 %s"
	TripSummaryDuration    = "共%d天"
	TripSummaryBudget      = "预算: %s元"
	TripSummaryInterests   = "兴趣: %s"
	TripSummaryStyle       = "旅行风格: %s"
	TripSummaryRequirement = "特殊需求: %s"
)

// Defaults
const (
	DefaultPersistTimeout    = 5 * time.Second
	DefaultTripLookupTimeout = 5 * time.Second
)
