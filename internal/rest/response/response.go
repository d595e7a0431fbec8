package response

// DateTimeFormat is the wire format of all timestamps.
const DateTimeFormat = "2006-01-02 15:04:05"

// User 评论作者摘要
type User struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url,omitempty"`
}
