package content

import "github.com/noorjournal/noor/internal/models"

// FallbackInspiration returns the fixed, hard-coded authentic pair shown
// when every fetch fails. The UI is never left without content.
func FallbackInspiration() models.DailyInspiration {
	return models.DailyInspiration{
		Ayah: models.Passage{
			Arabic: "فَإِنَّ مَعَ الْعُسْرِ يُسْرًا * إِنَّ مَعَ الْعُسْرِ يُسْرًا",
			Urdu:   "پس بیشک مشکل کے ساتھ آسانی ہے، بیشک مشکل کے ساتھ آسانی ہے",
			Ref:    "Surah Ash-Sharh 94:5-6",
		},
		Hadith: models.Passage{
			Arabic: "إِنَّمَا الأَعْمَالُ بِالنِّيَّاتِ وَإِنَّمَا لِكُلِّ امْرِئٍ مَا نَوَى",
			Urdu:   "اعمال کا دارومدار نیتوں پر ہے اور ہر شخص کے لیے وہی ہے جس کی اس نے نیت کی",
			Ref:    "Sahih al-Bukhari 1",
		},
	}
}
