package handlers

// Log prefixes
const (
	LogPrefixTripPlanning  = "internal.agent.handlers.TripPlanning"
	LogPrefixTransport     = "internal.agent.handlers.Transport"
	LogPrefixAccommodation = "internal.agent.handlers.Accommodation"
	LogPrefixRestaurants   = "internal.agent.handlers.FoodActivity.restaurants"
	LogPrefixActivities    = "internal.agent.handlers.FoodActivity.activities"
	LogPrefixTranslate     = "internal.agent.handlers.Translation.text"
	LogPrefixConversation  = "internal.agent.handlers.Translation.conversation"
	LogPrefixGeneric       = "internal.agent.handlers.Generic"
)

// Sampling temperatures
const (
	TemperatureTripPlanning  = 0.7
	TemperatureTransport     = 0.3
	TemperatureAccommodation = 0.7
	TemperatureFoodActivity  = 0.7
	TemperatureTranslation   = 0.5
	TemperatureGeneric       = 0.7
)

// Option caps per handler, further bounded by Config.MaxOptions.
const (
	MaxHotelOptions      = 10
	MaxRestaurantOptions = 8
	MaxActivityOptions   = 8
	MaxFlightOptions     = 10
	MaxLegOptions        = 10
)

// User-facing failure messages
const (
	ErrMsgTripPlanning  = "行程规划生成失败，请稍后重试"
	ErrMsgTransport     = "交通方案生成失败，请稍后重试"
	ErrMsgAccommodation = "住宿推荐生成失败，请稍后重试"
	ErrMsgRestaurants   = "餐厅推荐生成失败，请稍后重试"
	ErrMsgActivities    = "活动推荐生成失败，请稍后重试"
	ErrMsgTranslate     = "翻译失败，请稍后重试"
	ErrMsgConversation  = "对话翻译失败，请稍后重试"
	ErrMsgGeneric       = "回复生成失败，请稍后重试"
	ErrMsgNothingToSay  = "请提供需要翻译的内容"
)

// Placeholder rendered for absent prompt fields
const Unspecified = "未指定"

// Context keys understood by the handlers. Callers may set any of them;
// the trip context fold sets the trip-derived ones.
const (
	KeyDestination         = "destination"
	KeyOrigin              = "origin"
	KeyStartDate           = "startDate"
	KeyEndDate             = "endDate"
	KeyDepartureDate       = "departureDate"
	KeyReturnDate          = "returnDate"
	KeyCheckIn             = "checkIn"
	KeyCheckOut            = "checkOut"
	KeyDate                = "date"
	KeyTime                = "time"
	KeyBudget              = "budget"
	KeyInterests           = "interests"
	KeyTravelStyle         = "travelStyle"
	KeyDuration            = "duration"
	KeySpecialRequirements = "specialRequirements"
	KeyPreferredMode       = "preferredMode"
	KeyPassengers          = "passengers"
	KeyGuests              = "guests"
	KeyPeople              = "people"
	KeyAccommodationType   = "accommodationType"
	KeyTravelPurpose       = "travelPurpose"
	KeyCuisine             = "cuisinePreferences"
	KeyDietary             = "dietaryRestrictions"
	KeyOccasion            = "occasion"
	KeyActivityType        = "activityType"
	KeyText                = "text"
	KeySourceLanguage      = "sourceLanguage"
	KeyTargetLanguage      = "targetLanguage"
	KeyScenario            = "scenario"
	KeyTravelerSpeech      = "travelerSpeech"
	KeyTravelerLanguage    = "travelerLanguage"
	KeyOperation           = "operation"
	KeyTripSummary         = "tripSummary"
)

// Values of KeyOperation
const (
	OperationRestaurants  = "restaurants"
	OperationActivities   = "activities"
	OperationTranslate    = "translate"
	OperationConversation = "conversation"
)

const (
	DefaultSourceLanguage   = "自动检测"
	DefaultTargetLanguage   = "英语"
	DefaultTravelerLanguage = "中文"
	DefaultScenario         = "旅行中的日常交流"
)

// Prompt templates
const (
	PromptTripPlanning = `你是一个专业的旅行规划师。请根据以下信息为用户制定最优旅行路线：

目的地: %s
旅行时间: %s 天
预算: %s
兴趣: %s
旅行风格: %s
特殊要求: %s
%s
用户原始问题: %s

请提供详细的日程安排，包括景点游览、用餐建议、交通安排等。`

	PromptTransport = `你是一个专业的交通规划师。请根据以下信息为用户制定交通方案：

起点: %s
终点: %s
出发日期: %s
返程日期: %s
行程天数: %s
预算: %s
偏好交通方式: %s
乘客人数: %s
特殊要求: %s
可用的航班: %s
可用的公共交通: %s
用户原始问题: %s

请比较各方案的时间、价格和舒适度，给出推荐的交通方案。`

	PromptAccommodation = `你是一个专业的住宿顾问。请根据以下信息为用户推荐住宿：

目的地: %s
入住日期: %s
退房日期: %s
预算: %s
住宿类型偏好: %s
旅行目的: %s
人数: %s
特殊要求: %s
可用的住宿选项: %s
用户原始问题: %s

请考虑位置、价格、设施、评价和特殊需求，提供详细的住宿建议。`

	PromptRestaurants = `你是一个专业的美食顾问。请根据以下信息为用户推荐餐厅：

目的地: %s
用餐日期: %s
用餐时间: %s
预算: %s
口味偏好: %s
饮食限制: %s
人数: %s
场合: %s
可用的餐厅选项: %s
用户原始问题: %s

请考虑位置、价格、菜系、评价和特殊需求，提供详细的餐厅建议。`

	PromptActivities = `你是一个专业的旅行活动顾问。请根据以下信息为用户推荐活动：

目的地: %s
日期: %s
时间: %s
预算: %s
兴趣: %s
活动类型: %s
人数: %s
天气: %s
可用的活动选项: %s
用户原始问题: %s

请考虑位置、价格、类型、评价和天气条件，提供详细的活动建议。`

	PromptTranslate = `你是一个专业的翻译助手。请将以下文本从%s翻译成%s：

文本: %s

请提供准确、自然的翻译，保持原文的语气和风格。`

	PromptConversation = `你是一个专业的旅行翻译助手。请帮助旅行者进行跨语言交流：

场景: %s
旅行者说(语言: %s): %s
目标语言: %s

请按以下格式回答，每项单独一行：
1. 旅行者话语的翻译
2. 适合该场景的回应建议
3. 回应建议的翻译回旅行者的语言`

	PromptGeneric = `你是一个友好、专业的旅行助手。请简洁地回答用户的问题；如果问题与旅行无关，也请礼貌地提供帮助。

%s用户问题: %s`

	PromptContextHeader = "已知信息:\n"
)

// Canned replies used by the Generic rule table
const (
	ReplyGreeting     = "您好！我是您的旅行助手，可以帮您规划行程、查询交通、推荐住宿和美食活动，也可以帮您翻译。请问有什么可以帮您？"
	ReplyThanks       = "不客气！祝您旅途愉快，有需要随时找我。"
	ReplyCapabilities = `我可以为您提供以下帮助：
1. 行程规划：根据目的地、天数和预算制定日程
2. 交通助手：查询航班和火车等交通方案
3. 住宿推荐：按类型和预算推荐酒店、民宿、公寓
4. 翻译：文本翻译和旅行场景对话翻译
5. 美食与活动：推荐餐厅和结合天气的游玩活动`
)

// Labels for the parsed conversation translation
const (
	LabelTranslation      = "翻译"
	LabelSuggestion       = "建议回应"
	LabelSuggestionReturn = "回应翻译"
)
