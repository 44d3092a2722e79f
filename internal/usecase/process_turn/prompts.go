package process_turn

// Тексты реплик ассистента. Ядро отдаёт их как упорядоченный список простых
// строк; форматирование и разметка — забота презентационного слоя.
const (
	promptEmail    = "Nice to meet you, %s! What's the best email address to reach you at?"
	promptPurpose  = "Got it. What's the appointment about?"
	promptDuration = "How long should we set aside? For example \"45 minutes\" or \"1.5 hours\"."
	promptDate     = "What day works for you? You can say something like \"2026-09-01\", \"September 1\" or \"Tuesday, September 1\"."
	promptTime     = "And what time on that day? For example \"14:00\" or \"2pm\"."
	promptTimezone = "Which timezone are you in? Free text is fine, e.g. \"CET\" or \"US Eastern\"."
	promptName     = "Happy to set up another appointment! What's your name?"

	retryName     = "I didn't quite catch your name. Could you share it again? A couple of characters at least."
	retryEmail    = "Hmm, that doesn't look like an email address to me. Could you share it again, e.g. jane@example.com?"
	retryDuration = "Sorry, I couldn't work out a duration from that. Try something like \"30 minutes\" or \"1 hour\"."
	retryDate     = "I couldn't find an upcoming date in that — past dates don't work either. Could you try a format like \"September 1\" or \"2026-09-01\"?"
	retryTime     = "I couldn't read that as a time. Try something like \"14:00\" or \"2pm\"."
	retryConfirm  = "Just to be sure — should I lock that slot in? A simple yes or no works."

	recapHeader  = "Here's what I have so far:"
	recapFields  = "Name: %s\nEmail: %s\nPurpose: %s\nDuration: %d minutes\nWhen: %s"
	recapConfirm = "Shall I book it? (yes/no)"

	slotTakenIntro   = "I'm sorry, that slot is already taken. Here are the nearest openings:"
	slotTakenOutro   = "Does one of those work? Just tell me the time you'd like."
	noAlternatives   = "I'm sorry — I couldn't find any open slots around that date. Let's try a different day: what date works for you?"
	slotLost         = "I'm sorry, it looks like that slot slipped away while we were talking. Let's pick a new date: what day works?"
	scheduleLost     = "Sorry, I seem to have lost track of the date we discussed. Let's pick it again: what day works for you?"
	changeAck        = "No problem, let's adjust. What date should we look at instead?"
	confirmedMessage = "You're all set, %s! I've booked %s for you. A confirmation is on its way to %s."
	confirmedFollow  = "If you'd like to book another appointment, just tell me your name."
)

// GreetingMessages возвращает приветствие новой сессии. Ровно одно сообщение
// до первой реплики пользователя.
func GreetingMessages() []string {
	return []string{
		"Hi there! I'm the SMC scheduling assistant — I can help you book an appointment. Let's start with your name: what should I call you?",
	}
}
