package store

import (
	"time"

	"github.com/vibra-app/vibra/internal/models"
)

// Demo data shown at startup. Ids are stable so liked/joined sets survive
// view switches within a session.

func SeedPosts() []models.Post {
	return []models.Post{
		{
			ID:       "1",
			Author:   models.User{ID: "u1", Name: "Melis Vibe", Handle: "@melis", Avatar: "https://picsum.photos/id/64/100/100", Verified: true},
			Content:  "Gelecek burada. Teknoloji ve sanatın birleştiği o ince çizgideyiz. 🌌",
			Image:    "https://images.unsplash.com/photo-1618005182384-a83a8bd57fbe",
			Likes:    1240,
			Comments: 85,
			Time:     "2d",
		},
		{
			ID:       "2",
			Author:   models.User{ID: "u2", Name: "Cyber Düşünür", Handle: "@felsefe_ai", Avatar: "https://picsum.photos/id/91/100/100"},
			Content:  "Bazen sadece durup gökyüzüne bakmak, bin satır kod yazmaktan daha fazla ilham verir. Yaratıcılık boşlukta saklıdır.",
			Likes:    3400,
			Comments: 120,
			Time:     "4s",
		},
		{
			ID:       "3",
			Author:   models.User{ID: "u3", Name: "Neon Gezgin", Handle: "@gece_modu", Avatar: "https://picsum.photos/id/122/100/100"},
			Content:  "Bu şehrin ışıkları hiç sönmüyor. ⚡️ #cyberpunk #istanbul",
			Image:    "https://images.unsplash.com/photo-1550751827-4bd374c3f58b",
			Likes:    856,
			Comments: 42,
			Time:     "5s",
		},
		{
			ID:       "4",
			Author:   models.User{ID: "u4", Name: "Kod Art", Handle: "@coder_art", Avatar: "https://picsum.photos/id/250/100/100"},
			Content:  "Algoritmaların dansı. Bugün yeni bir yapay zeka modeli deniyorum.",
			Image:    "https://images.unsplash.com/photo-1620712943543-bcc4688e7485",
			Likes:    543,
			Comments: 12,
			Time:     "12s",
		},
		{
			ID:       "5",
			Author:   models.User{ID: "u5", Name: "Müzik Kutusu", Handle: "@retro_ses", Avatar: "https://picsum.photos/id/338/100/100"},
			Content:  "Eski şarkıların ruhu, yeni dünyanın hızında kaybolmuyor mu sizce de? 🎵",
			Likes:    2100,
			Comments: 340,
			Time:     "20s",
		},
	}
}

func SeedChatPreviews() []models.ChatPreview {
	return []models.ChatPreview{
		{
			ID:          "c1",
			User:        models.User{ID: "u2", Name: "Can Tekin", Handle: "@cantekin", Avatar: "https://picsum.photos/id/91/100/100", Verified: true},
			LastMessage: "Yarınki hackathon için kayıtlar açılmış!",
			UnreadCount: 3,
			Time:        "14:30",
			Online:      true,
		},
		{
			ID:          "c2",
			User:        models.User{ID: "u4", Name: "Kampüs Grubu", Handle: "@grup_muhabbet", Avatar: "https://picsum.photos/id/111/100/100"},
			LastMessage: "Ahmet: Notları drive'a yükledim arkadaşlar.",
			Time:        "12:15",
		},
		{
			ID:          "c3",
			User:        models.User{ID: "u3", Name: "Zeynep Su", Handle: "@zeynoo", Avatar: "https://picsum.photos/id/65/100/100"},
			LastMessage: "Görüşürüz 👋",
			Time:        "Dün",
			Online:      true,
		},
		{
			ID:          "c4",
			User:        models.User{ID: "u5", Name: "Mert Yılmaz", Handle: "@merty", Avatar: "https://picsum.photos/id/338/100/100"},
			LastMessage: "Fotoğrafı beğendim, çok iyi çıkmış.",
			UnreadCount: 1,
			Time:        "Dün",
		},
	}
}

// SeedChatHistories keys each conversation's opening messages by
// conversation id.
func SeedChatHistories() map[string][]models.ChatMessage {
	now := time.Now()
	return map[string][]models.ChatMessage{
		"c1": {
			{ID: "m1", SenderID: "u2", Text: "Selam! Naber? Proje ne durumda?", Timestamp: now.Add(-100 * time.Second)},
			{ID: "m2", SenderID: models.LocalUserID, Text: "İyidir, tasarım bitti sayılır. Sen naptın?", Timestamp: now.Add(-90 * time.Second), IsMe: true},
			{ID: "m3", SenderID: "u2", Text: "Ben de backend tarafını toparlıyorum. Yarınki hackathon için kayıtlar açılmış bu arada!", Timestamp: now.Add(-5 * time.Second)},
		},
		"c2": {
			{ID: "m4", SenderID: "u4", Text: "Ahmet: Notları drive'a yükledim arkadaşlar.", Timestamp: now.Add(-2 * time.Hour)},
		},
		"c3": {
			{ID: "m5", SenderID: models.LocalUserID, Text: "Yarın kampüste misin?", Timestamp: now.Add(-26 * time.Hour), IsMe: true},
			{ID: "m6", SenderID: "u3", Text: "Görüşürüz 👋", Timestamp: now.Add(-25 * time.Hour)},
		},
		"c4": {
			{ID: "m7", SenderID: "u5", Text: "Fotoğrafı beğendim, çok iyi çıkmış.", Timestamp: now.Add(-30 * time.Hour)},
		},
	}
}

// SeedReplies maps conversations to the scripted line their counterpart
// sends after a simulated delay.
func SeedReplies() map[string]string {
	return map[string]string{
		"c1": "Harika görünüyor! 🔥 Detayları konuşalım.",
		"c2": "Ahmet: Süper, toplantıda görüşürüz. 👍",
		"c3": "Tamamdır, haber veririm! ✨",
		"c4": "Kesinlikle, bir ara kahve içelim. ☕",
	}
}

func SeedAnnouncements() []models.Announcement {
	return []models.Announcement{
		{ID: "a1", Title: "Cyber Rave", Category: models.CategoryEvent, Description: "Şehrin altında gizli techno gecesi.", Date: "Bu Gece", Image: "https://images.unsplash.com/photo-1574391884720-385e97488863"},
		{ID: "a2", Title: "Start-up Zirvesi", Category: models.CategoryNews, Description: "Yatırımcılarla buluşma noktası.", Date: "Yarın", Image: "https://images.unsplash.com/photo-1559136555-9303baea8ebd"},
		{ID: "a3", Title: "E-Spor Turnuvası", Category: models.CategoryEvent, Description: "League of Legends final maçı izleme etkinliği.", Date: "Hafta Sonu", Image: "https://images.unsplash.com/photo-1542751371-adc38448a05e"},
		{ID: "a4", Title: "Sokak Lezzetleri", Category: models.CategoryNews, Description: "Kadıköy sahilinde yemek festivali.", Date: "Cuma", Image: "https://images.unsplash.com/photo-1555939594-58d7cb561ad1"},
		{ID: "a5", Title: "Retro Pazarı", Category: models.CategoryEvent, Description: "Vintage kıyafetler ve plaklar.", Date: "Pazar", Image: "https://images.unsplash.com/photo-1551532070-42af02f29ad2"},
		{ID: "a6", Title: "Kodlama Kampı", Category: models.CategoryEvent, Description: "48 saat aralıksız kodlama maratonu.", Date: "Haftaya", Image: "https://images.unsplash.com/photo-1504384308090-c54be3855833"},
	}
}
