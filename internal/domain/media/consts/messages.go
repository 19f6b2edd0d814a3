package consts

// User facing replies
const (
	MsgStart = "👋 Send me a YouTube or Instagram link to download the media."

	MsgHelp = `📚 <b>How it works</b>

Send a YouTube link and pick <b>video</b> or <b>audio</b>.
Send an Instagram post link and the media is sent right away.

/start - start the bot
/help - show this message`

	MsgUnrecognizedLink = "❗ Send a valid YouTube or Instagram link."
	MsgChooseFormat     = "Choose format to download:"
	MsgNoURL            = "No URL found."
	MsgCouldNotFetch    = "Couldn't fetch media."
	MsgUnknownChoice    = "❗ Unknown option, send the link again."
	MsgErrorPrefix      = "❌ Error: "
)

// Chat actions shown while a flow is running
const (
	ActionUploadVideo    = "upload_video"
	ActionUploadDocument = "upload_document"
	ActionUploadPhoto    = "upload_photo"
)
