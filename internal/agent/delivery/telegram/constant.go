package telegram

import "time"

const DefaultProcessTimeout = 2 * time.Minute

const userIDPrefix = "telegram_"

// Commands
const (
	CommandStart = "start"
	CommandHelp  = "help"
	CommandClear = "clear"
)

// Messages
const (
	MsgWelcome = "👋 欢迎使用*旅行助手*！\n\n我可以帮您：\n• 🗺 规划行程\n• 🚄 查询交通方案\n• 🏨 推荐住宿\n• 🍜 推荐美食与活动\n• 🌐 翻译与对话协助\n\n_例如：\"请帮我规划北京五天的行程，预算5000\"_"
	MsgHelp    = "*使用说明*\n\n直接发送您的旅行问题即可，例如：\n`从上海到北京坐高铁还是飞机划算？`\n`帮我把\"请问洗手间在哪里\"翻译成日语`\n\n命令：\n/start 欢迎信息\n/help 使用说明\n/clear 清空对话记录"
	MsgWorking = "⏳ 正在处理..."
	MsgCleared = "🧹 已清空 %d 条对话记录。"
	MsgFailed  = "处理您的请求时出错，请稍后再试。"
	MsgReply   = "*%s*\n\n%s"
)
