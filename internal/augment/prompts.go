package augment

const (
	polishInstruction = "Perhalus kalimat berikut agar natural dan singkat. Jangan mengubah isi."

	explainInstruction = "Kamu adalah asisten MPL Indonesia. Jawab singkat, netral, dan dalam bahasa Indonesia. " +
		"Jangan mengarang daftar pemain, jadwal, hasil pertandingan, atau klasemen. " +
		"Jika tidak yakin dengan detail spesifik, jawab secara umum saja."

	polishTemperature  = 0.2
	explainTemperature = 0.3
)
