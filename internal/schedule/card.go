package schedule

import (
	"fmt"
	"time"
)

// invalidRowCard показывается вместо карточки для слишком коротких строк
const invalidRowCard = "⚠️ Некоректний рядок розкладу."

// RenderCard отрисовывает курс карточкой в HTML-разметке Telegram.
// Пустые поля заменяются на "-", даты приводятся к "дд.мм.гггг".
// Значения полей вставляются как есть, без экранирования.
func RenderCard(r Row, today time.Time) string {
	if !r.Displayable() {
		return invalidRowCard
	}

	start, startOK := ParseDate(r.StartRaw, today)
	end, endOK := ParseDate(r.EndRaw, today)

	return fmt.Sprintf(
		"🏙 <b>%s</b>\n🎓 %s\n👩‍🏫 %s\n💰 %s\n📅 %s — %s\n🆔 <code>%s</code>",
		orDash(r.City),
		orDash(r.Course),
		orDash(r.Instructor),
		orDash(r.Price),
		FormatDate(start, startOK),
		FormatDate(end, endOK),
		orDash(r.GroupID),
	)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
