package database

import (
	"fmt"
	"log"

	"nihongo_backend/internal/config"
	"nihongo_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.User{},
		&model.Kanji{},
		&model.Kana{},
		&model.Vocabulary{},
		&model.GrammarLesson{},
		&model.GrammarQuestion{},
		&model.Submission{},
		&model.SubmissionAnswer{},
		&model.MiniTest{},
		&model.MiniTestQuestion{},
		&model.MiniTestResult{},
	)
	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	seedKana(db)

	return db, nil
}

// seedKana inserts the basic gojūon rows on an empty database so the kana endpoints
// work out of the box.
func seedKana(db *gorm.DB) {
	var count int64
	db.Model(&model.Kana{}).Count(&count)
	if count > 0 {
		return
	}

	type row struct {
		hira, kata, romaji, group string
	}
	rows := []row{
		{"あ", "ア", "a", "a"}, {"い", "イ", "i", "a"}, {"う", "ウ", "u", "a"}, {"え", "エ", "e", "a"}, {"お", "オ", "o", "a"},
		{"か", "カ", "ka", "ka"}, {"き", "キ", "ki", "ka"}, {"く", "ク", "ku", "ka"}, {"け", "ケ", "ke", "ka"}, {"こ", "コ", "ko", "ka"},
		{"さ", "サ", "sa", "sa"}, {"し", "シ", "shi", "sa"}, {"す", "ス", "su", "sa"}, {"せ", "セ", "se", "sa"}, {"そ", "ソ", "so", "sa"},
		{"た", "タ", "ta", "ta"}, {"ち", "チ", "chi", "ta"}, {"つ", "ツ", "tsu", "ta"}, {"て", "テ", "te", "ta"}, {"と", "ト", "to", "ta"},
		{"な", "ナ", "na", "na"}, {"に", "ニ", "ni", "na"}, {"ぬ", "ヌ", "nu", "na"}, {"ね", "ネ", "ne", "na"}, {"の", "ノ", "no", "na"},
		{"は", "ハ", "ha", "ha"}, {"ひ", "ヒ", "hi", "ha"}, {"ふ", "フ", "fu", "ha"}, {"へ", "ヘ", "he", "ha"}, {"ほ", "ホ", "ho", "ha"},
		{"ま", "マ", "ma", "ma"}, {"み", "ミ", "mi", "ma"}, {"む", "ム", "mu", "ma"}, {"め", "メ", "me", "ma"}, {"も", "モ", "mo", "ma"},
		{"や", "ヤ", "ya", "ya"}, {"ゆ", "ユ", "yu", "ya"}, {"よ", "ヨ", "yo", "ya"},
		{"ら", "ラ", "ra", "ra"}, {"り", "リ", "ri", "ra"}, {"る", "ル", "ru", "ra"}, {"れ", "レ", "re", "ra"}, {"ろ", "ロ", "ro", "ra"},
		{"わ", "ワ", "wa", "wa"}, {"を", "ヲ", "wo", "wa"}, {"ん", "ン", "n", "wa"},
	}

	for _, r := range rows {
		db.Create(&model.Kana{Character: r.hira, Romaji: r.romaji, Type: model.Hiragana, RowGroup: r.group})
		db.Create(&model.Kana{Character: r.kata, Romaji: r.romaji, Type: model.Katakana, RowGroup: r.group})
	}
}
