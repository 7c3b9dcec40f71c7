package email

import (
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"github.com/kipkirui63/all-in-one/internal/model"
)

const (
	calendarProductID = "-//CrispAI//Meeting Scheduler//EN"
	calendarLocation  = "Google Meet (link will be provided)"
	calendarUIDDomain = "crispai.ca"
)

// BuildInvite はミーティングの iCalendar（METHOD:REQUEST）招待を生成する。
// 参加者は顧客と社内受信箱。
func BuildInvite(m *model.Meeting, inbox string, now time.Time) []byte {
	cal := ics.NewCalendarFor("CrispAI")
	cal.SetProductId(calendarProductID)
	cal.SetMethod(ics.MethodRequest)

	ev := cal.AddEvent(fmt.Sprintf("%s@%s", uuid.NewString(), calendarUIDDomain))
	ev.SetDtStampTime(now.UTC())
	ev.SetStartAt(m.PreferredDate.UTC())
	ev.SetEndAt(m.EndTime().UTC())
	ev.SetSummary(fmt.Sprintf("%s - %s", m.MeetingType, m.Name))
	ev.SetDescription(inviteDescription(m))
	ev.SetLocation(calendarLocation)
	ev.AddAttendee(m.Email)
	ev.AddAttendee(inbox)
	ev.SetStatus(ics.ObjectStatusConfirmed)
	ev.SetSequence(0)

	return []byte(cal.Serialize())
}

func inviteDescription(m *model.Meeting) string {
	if d := model.StringValue(m.Description); d != "" {
		return d
	}
	return fmt.Sprintf("Meeting with %s regarding %s", m.Name, m.MeetingType)
}
