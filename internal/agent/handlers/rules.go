package handlers

import (
	"strings"

	"travel-assistant/internal/agent"
)

// Rule pairs a predicate with the value selected when it matches.
type Rule[T any] struct {
	Name  string
	Match func(in agent.Input) bool // nil matches everything
	Value T
}

// RuleTable is evaluated top-down; the first matching rule wins. Tables
// should end with a catch-all rule so evaluation always selects something.
type RuleTable[T any] []Rule[T]

// Evaluate returns the first rule matching in.
func (t RuleTable[T]) Evaluate(in agent.Input) (Rule[T], bool) {
	for _, r := range t {
		if r.Match == nil || r.Match(in) {
			return r, true
		}
	}
	return Rule[T]{}, false
}

// TravelMode selects which transport providers are consulted.
type TravelMode int

const (
	ModeAny TravelMode = iota
	ModeFlight
	ModeGround
)

func (m TravelMode) String() string {
	switch m {
	case ModeFlight:
		return "flight"
	case ModeGround:
		return "ground"
	}
	return "any"
}

// Rules groups the swappable rule tables used by the handlers.
type Rules struct {
	TransportMode RuleTable[TravelMode]
	FoodActivity  RuleTable[string]
	Translation   RuleTable[string]
	Generic       RuleTable[string] // Value is a canned reply; empty delegates to the model
}

var (
	flightWords     = []string{"飞机", "航班", "机票", "飞", "flight", "plane", "fly"}
	groundWords     = []string{"火车", "高铁", "动车", "大巴", "汽车", "巴士", "地铁", "train", "bus", "rail"}
	foodWords       = []string{"吃", "餐厅", "美食", "饭", "菜", "小吃", "餐", "restaurant", "food", "dinner", "lunch"}
	activityWords   = []string{"景点", "活动", "好玩", "游玩", "玩", "游览", "参观", "attraction", "activity", "things to do"}
	dialogueWords   = []string{"对话", "怎么回答", "怎么回复", "怎么回应", "对方说", "场景", "conversation", "reply"}
	greetingQueries = []string{"你好", "您好", "嗨", "哈喽", "hi", "hello", "hey", "在吗"}
	thanksWords     = []string{"谢谢", "多谢", "感谢", "thank"}
	capabilityWords = []string{"你能做什么", "你会什么", "你可以做什么", "有什么功能", "怎么用", "what can you do"}
)

// DefaultRules returns the built-in keyword rule tables.
func DefaultRules() Rules {
	return Rules{
		TransportMode: RuleTable[TravelMode]{
			{Name: "preferred mode is flight", Match: valueContainsAny(KeyPreferredMode, flightWords), Value: ModeFlight},
			{Name: "preferred mode is ground", Match: valueSet(KeyPreferredMode), Value: ModeGround},
			{Name: "query mentions flights", Match: queryContainsAny(flightWords), Value: ModeFlight},
			{Name: "query mentions ground transport", Match: queryContainsAny(groundWords), Value: ModeGround},
			{Name: "any mode", Value: ModeAny},
		},
		FoodActivity: RuleTable[string]{
			{Name: "explicit restaurants", Match: valueEquals(KeyOperation, OperationRestaurants), Value: OperationRestaurants},
			{Name: "explicit activities", Match: valueEquals(KeyOperation, OperationActivities), Value: OperationActivities},
			{Name: "activity type given", Match: valueSet(KeyActivityType), Value: OperationActivities},
			{Name: "query mentions food", Match: queryContainsAny(foodWords), Value: OperationRestaurants},
			{Name: "query mentions activities", Match: queryContainsAny(activityWords), Value: OperationActivities},
			{Name: "restaurants by default", Value: OperationRestaurants},
		},
		Translation: RuleTable[string]{
			{Name: "explicit text translation", Match: valueEquals(KeyOperation, OperationTranslate), Value: OperationTranslate},
			{Name: "explicit conversation", Match: valueEquals(KeyOperation, OperationConversation), Value: OperationConversation},
			{Name: "traveler speech given", Match: valueSet(KeyTravelerSpeech), Value: OperationConversation},
			{Name: "query describes a dialogue", Match: queryContainsAny(dialogueWords), Value: OperationConversation},
			{Name: "text translation by default", Value: OperationTranslate},
		},
		Generic: RuleTable[string]{
			{Name: "greeting", Match: queryIsOneOf(greetingQueries), Value: ReplyGreeting},
			{Name: "thanks", Match: queryContainsAny(thanksWords), Value: ReplyThanks},
			{Name: "capabilities", Match: queryContainsAny(capabilityWords), Value: ReplyCapabilities},
			{Name: "model", Value: ""},
		},
	}
}

func (r Rules) withDefaults() Rules {
	d := DefaultRules()
	if len(r.TransportMode) == 0 {
		r.TransportMode = d.TransportMode
	}
	if len(r.FoodActivity) == 0 {
		r.FoodActivity = d.FoodActivity
	}
	if len(r.Translation) == 0 {
		r.Translation = d.Translation
	}
	if len(r.Generic) == 0 {
		r.Generic = d.Generic
	}
	return r
}

// --- predicates ---

func queryContainsAny(words []string) func(agent.Input) bool {
	return func(in agent.Input) bool {
		return containsAny(strings.ToLower(in.Query), words)
	}
}

func queryIsOneOf(values []string) func(agent.Input) bool {
	return func(in agent.Input) bool {
		q := strings.ToLower(strings.Trim(in.Query, " \t\n!！?？。.,，~～"))
		for _, v := range values {
			if q == v {
				return true
			}
		}
		return false
	}
}

func valueSet(key string) func(agent.Input) bool {
	return func(in agent.Input) bool {
		return in.Value(key) != ""
	}
}

func valueEquals(key, want string) func(agent.Input) bool {
	return func(in agent.Input) bool {
		return strings.EqualFold(in.Value(key), want)
	}
}

func valueContainsAny(key string, words []string) func(agent.Input) bool {
	return func(in agent.Input) bool {
		return containsAny(strings.ToLower(in.Value(key)), words)
	}
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
