package chat

// Fixed answers. Users see these verbatim.
const (
	msgEmpty            = "Pesan kosong."
	msgOutOfScope       = "Maaf, saya hanya melayani pertanyaan seputar MPL Indonesia."
	msgTeamNotFound     = "Tim tidak ditemukan."
	msgNoStandings      = "Data klasemen belum tersedia."
	msgNoMatchesToday   = "Tidak ada pertandingan MPL hari ini."
	msgDetailsMissing   = "Detail tersebut belum tersedia saat ini."
	msgCannotAnswerNow  = "Maaf, saya belum bisa menjawab pertanyaan itu sekarang."
	msgUnrecognized     = "Format belum dikenali.\nContoh:\n• siapa jungler ONIC\n• klasemen MPL\n• jadwal MPL hari ini"
	standingsLimit      = 8
	standingsHeader     = "Klasemen MPL:"
	roleAllHeaderFormat = "Daftar %s di semua tim MPL:"
)
