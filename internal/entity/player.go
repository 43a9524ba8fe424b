package entity

const BotID = "bot"

type Player struct {
	ID   string `json:"id"`
	Mark Cell   `json:"mark"`
}

func NewBotPlayer(mark Cell) *Player {
	return &Player{
		ID:   BotID,
		Mark: mark,
	}
}

func (that *Player) IsBot() bool {
	return that.ID == BotID
}
