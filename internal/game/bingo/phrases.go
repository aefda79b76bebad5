package bingo

// phrasePool - фиксированный пул фраз кампусного бинго.
// На карточку уходит 24 уникальных фразы без возврата
var phrasePool = []string{
	"Lecturer cancels class last minute",
	"WiFi dies during registration",
	"Someone sells jollof at the hostel",
	"Generator noise during lecture",
	"Course rep sends 2am broadcast",
	"Project group member disappears",
	"Free food at faculty event",
	"Printer queue before deadline",
	"Roommate borrows charger again",
	"Surprise test on Monday",
	"Bookshop out of course handout",
	"ATM queue longer than lecture",
	"Light comes back at midnight",
	"Lost ID card week one",
	"Class moved to bigger hall",
	"Someone asks for past questions",
	"Okada price doubles when raining",
	"Hostel water runs out",
	"Lecturer takes attendance twice",
	"Final year student sells everything",
	"Campus fellowship flyer in class",
	"Library seat taken by bag",
	"Semester result delayed again",
	"Someone hawks airtime in class",
	"Departmental dues reminder",
	"Strike rumour in group chat",
	"Borrowed textbook never returns",
	"Queue jumps at cafeteria",
	"Phone dies during online test",
	"Convocation gown photoshoot",
}

// PoolSize возвращает размер пула фраз
func PoolSize() int {
	return len(phrasePool)
}
