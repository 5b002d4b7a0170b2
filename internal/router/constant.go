package router

// Log prefixes
const (
	LogPrefixClassify = "internal.router.Classify"
)

// Classifier configuration
const (
	// ClassifyTemperature keeps classification deterministic
	ClassifyTemperature = 0.0

	RationaleNotProvided = "not provided"
)

// Log messages
const (
	MsgLLMCallFailed = "LLM call failed, falling back to Generic"
	MsgUnmatched     = "no category token in classifier output, falling back to Generic"
)

// PromptClassify is rendered with the user query and a context block.
// The parser in parser.go reads the "代理编号" and "理由" lines this prompt asks for.
const PromptClassify = `你是一个旅行助手的调度中心。请判断用户的问题应该交给哪个专业代理处理。

可选代理:
1. 行程规划代理: 制定旅行路线、日程安排、景点游览计划
2. 交通助手代理: 航班、火车、公共交通、出行方式和交通时间
3. 住宿推荐代理: 酒店、民宿、公寓的推荐与比较
4. 翻译代理: 文本翻译、旅行场景中的对话翻译
5. 美食与活动助手: 餐厅、美食推荐，当地活动、景点体验和天气

%s用户问题: %s

请严格按照以下格式回答，不要输出其他内容:
代理编号: <1-5>
理由: <一句话说明原因>`

// PromptContextHeader introduces the optional context lines
const PromptContextHeader = "已知信息:\n"
