// Package wordbank provides the built-in word lists and a combined word
// source over built-in and user-defined lists.
package wordbank

import "github.com/verte-zerg/kanafall/internal/model"

// Built-in list ids.
const (
	ListN5Core     = "n5-core"
	ListAccounting = "accounting"
	ListDailyLife  = "daily-life"
)

var builtinLists = []model.WordList{
	{
		ID:          ListN5Core,
		Name:        "JLPT N5 Core",
		Description: "Common beginner vocabulary",
		BuiltIn:     true,
		Words: []model.Word{
			{ID: "n5-001", Japanese: "会社", Reading: "かいしゃ", Romaji: "kaisha", Meaning: "company", Category: "work", Difficulty: 1},
			{ID: "n5-002", Japanese: "学校", Reading: "がっこう", Romaji: "gakkou", Meaning: "school", Category: "places", Difficulty: 1},
			{ID: "n5-003", Japanese: "先生", Reading: "せんせい", Romaji: "sensei", Meaning: "teacher", Category: "people", Difficulty: 1},
			{ID: "n5-004", Japanese: "切手", Reading: "きって", Romaji: "kitte", Meaning: "postage stamp", Category: "daily", Difficulty: 1},
			{ID: "n5-005", Japanese: "新聞", Reading: "しんぶん", Romaji: "shinbun", Meaning: "newspaper", Category: "daily", Difficulty: 1},
			{ID: "n5-006", Japanese: "電話", Reading: "でんわ", Romaji: "denwa", Meaning: "telephone", Category: "daily", Difficulty: 1},
			{ID: "n5-007", Japanese: "時間", Reading: "じかん", Romaji: "jikan", Meaning: "time", Category: "abstract", Difficulty: 1},
			{ID: "n5-008", Japanese: "天気", Reading: "てんき", Romaji: "tenki", Meaning: "weather", Category: "nature", Difficulty: 1},
			{ID: "n5-009", Japanese: "音楽", Reading: "おんがく", Romaji: "ongaku", Meaning: "music", Category: "culture", Difficulty: 1},
			{ID: "n5-010", Japanese: "買い物", Reading: "かいもの", Romaji: "kaimono", Meaning: "shopping", Category: "daily", Difficulty: 1},
			{ID: "n5-011", Japanese: "食べ物", Reading: "たべもの", Romaji: "tabemono", Meaning: "food", Category: "food", Difficulty: 1},
			{ID: "n5-012", Japanese: "飲み物", Reading: "のみもの", Romaji: "nomimono", Meaning: "beverage", Category: "food", Difficulty: 1},
			{ID: "n5-013", Japanese: "図書館", Reading: "としょかん", Romaji: "toshokan", Meaning: "library", Category: "places", Difficulty: 2},
			{ID: "n5-014", Japanese: "大丈夫", Reading: "だいじょうぶ", Romaji: "daijoubu", Meaning: "all right", Category: "phrases", Difficulty: 2},
			{ID: "n5-015", Japanese: "面白い", Reading: "おもしろい", Romaji: "omoshiroi", Meaning: "interesting", Category: "adjectives", Difficulty: 2},
			{ID: "n5-016", Japanese: "切符", Reading: "きっぷ", Romaji: "kippu", Meaning: "ticket", Category: "travel", Difficulty: 1},
			{ID: "n5-017", Japanese: "今日", Reading: "きょう", Romaji: "kyou", Meaning: "today", Category: "time", Difficulty: 1},
			{ID: "n5-018", Japanese: "去年", Reading: "きょねん", Romaji: "kyonen", Meaning: "last year", Category: "time", Difficulty: 2},
			{ID: "n5-019", Japanese: "写真", Reading: "しゃしん", Romaji: "shashin", Meaning: "photograph", Category: "daily", Difficulty: 1},
			{ID: "n5-020", Japanese: "旅行", Reading: "りょこう", Romaji: "ryokou", Meaning: "travel", Category: "travel", Difficulty: 2},
		},
	},
	{
		ID:          ListAccounting,
		Name:        "Accounting",
		Description: "Finance and accounting vocabulary",
		BuiltIn:     true,
		Words: []model.Word{
			{ID: "acc-001", Japanese: "資産", Reading: "しさん", Romaji: "shisan", Meaning: "asset", Category: "finance", Difficulty: 2},
			{ID: "acc-002", Japanese: "負債", Reading: "ふさい", Romaji: "fusai", Meaning: "liability", Category: "finance", Difficulty: 3},
			{ID: "acc-003", Japanese: "収益", Reading: "しゅうえき", Romaji: "shuueki", Meaning: "revenue", Category: "finance", Difficulty: 3},
			{ID: "acc-004", Japanese: "費用", Reading: "ひよう", Romaji: "hiyou", Meaning: "expense", Category: "finance", Difficulty: 2},
			{ID: "acc-005", Japanese: "利益", Reading: "りえき", Romaji: "rieki", Meaning: "profit", Category: "finance", Difficulty: 2},
			{ID: "acc-006", Japanese: "損失", Reading: "そんしつ", Romaji: "sonshitsu", Meaning: "loss", Category: "finance", Difficulty: 3},
			{ID: "acc-007", Japanese: "決算", Reading: "けっさん", Romaji: "kessan", Meaning: "financial settlement", Category: "finance", Difficulty: 4},
			{ID: "acc-008", Japanese: "帳簿", Reading: "ちょうぼ", Romaji: "choubo", Meaning: "ledger", Category: "finance", Difficulty: 4},
			{ID: "acc-009", Japanese: "現金", Reading: "げんきん", Romaji: "genkin", Meaning: "cash", Category: "finance", Difficulty: 2},
			{ID: "acc-010", Japanese: "預金", Reading: "よきん", Romaji: "yokin", Meaning: "bank deposit", Category: "finance", Difficulty: 3},
			{ID: "acc-011", Japanese: "税金", Reading: "ぜいきん", Romaji: "zeikin", Meaning: "tax", Category: "finance", Difficulty: 2},
			{ID: "acc-012", Japanese: "請求書", Reading: "せいきゅうしょ", Romaji: "seikyuusho", Meaning: "invoice", Category: "finance", Difficulty: 4},
			{ID: "acc-013", Japanese: "売上", Reading: "うりあげ", Romaji: "uriage", Meaning: "sales", Category: "finance", Difficulty: 3},
			{ID: "acc-014", Japanese: "経費", Reading: "けいひ", Romaji: "keihi", Meaning: "operating cost", Category: "finance", Difficulty: 3},
			{ID: "acc-015", Japanese: "株式", Reading: "かぶしき", Romaji: "kabushiki", Meaning: "stock shares", Category: "finance", Difficulty: 4},
		},
	},
	{
		ID:          ListDailyLife,
		Name:        "Daily Life",
		Description: "Everyday expressions and objects",
		BuiltIn:     true,
		Words: []model.Word{
			{ID: "dl-001", Japanese: "朝ご飯", Reading: "あさごはん", Romaji: "asagohan", Meaning: "breakfast", Category: "food", Difficulty: 1},
			{ID: "dl-002", Japanese: "晩ご飯", Reading: "ばんごはん", Romaji: "bangohan", Meaning: "dinner", Category: "food", Difficulty: 1},
			{ID: "dl-003", Japanese: "冷蔵庫", Reading: "れいぞうこ", Romaji: "reizouko", Meaning: "refrigerator", Category: "home", Difficulty: 2},
			{ID: "dl-004", Japanese: "洗濯", Reading: "せんたく", Romaji: "sentaku", Meaning: "laundry", Category: "home", Difficulty: 2},
			{ID: "dl-005", Japanese: "掃除", Reading: "そうじ", Romaji: "souji", Meaning: "cleaning", Category: "home", Difficulty: 2},
			{ID: "dl-006", Japanese: "駅前", Reading: "えきまえ", Romaji: "ekimae", Meaning: "in front of the station", Category: "places", Difficulty: 2},
			{ID: "dl-007", Japanese: "散歩", Reading: "さんぽ", Romaji: "sanpo", Meaning: "a walk", Category: "leisure", Difficulty: 1},
			{ID: "dl-008", Japanese: "約束", Reading: "やくそく", Romaji: "yakusoku", Meaning: "promise", Category: "abstract", Difficulty: 2},
			{ID: "dl-009", Japanese: "友達", Reading: "ともだち", Romaji: "tomodachi", Meaning: "friend", Category: "people", Difficulty: 1},
			{ID: "dl-010", Japanese: "一緒", Reading: "いっしょ", Romaji: "issho", Meaning: "together", Category: "abstract", Difficulty: 1},
		},
	},
}

// BuiltinLists returns copies of the built-in lists.
func BuiltinLists() []model.WordList {
	out := make([]model.WordList, len(builtinLists))
	copy(out, builtinLists)
	return out
}
