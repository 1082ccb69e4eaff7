package store

import "github.com/qiminglab/qiming/internal/core"

// seedEntry keeps the embedded dictionary compact; one row per character.
type seedEntry struct {
	char      string
	pinyin    string
	tone      int
	strokes   int
	classical int
	element   core.Element
	quality   int
	gender    core.Gender
	style     core.Style
	source    core.Source
	meaning   string
	note      string
}

func (e seedEntry) info() *core.CharacterInfo {
	return &core.CharacterInfo{
		Char:             e.char,
		Pinyin:           e.pinyin,
		Tone:             e.tone,
		Strokes:          e.strokes,
		ClassicalStrokes: e.classical,
		Element:          e.element,
		MeaningQuality:   e.quality,
		Gender:           e.gender,
		Style:            e.style,
		Source:           e.source,
		Meaning:          e.meaning,
		SourceNote:       e.note,
	}
}

// Seed returns the embedded reference dictionary. The engine treats the
// content as externally supplied data; coverage is deliberately partial.
func Seed() []*core.CharacterInfo {
	infos := make([]*core.CharacterInfo, 0, len(seedData))
	for _, e := range seedData {
		infos = append(infos, e.info())
	}
	return infos
}

var seedData = []seedEntry{
	// Common surnames.
	{"王", "wang", 2, 4, 4, core.ElementEarth, 60, core.GenderAny, core.StyleAny, core.SourceAny, "king", ""},
	{"李", "li", 3, 7, 7, core.ElementWood, 60, core.GenderAny, core.StyleAny, core.SourceAny, "plum", ""},
	{"张", "zhang", 1, 7, 11, core.ElementFire, 60, core.GenderAny, core.StyleAny, core.SourceAny, "to stretch", ""},
	{"刘", "liu", 2, 6, 15, core.ElementMetal, 60, core.GenderAny, core.StyleAny, core.SourceAny, "battle axe", ""},
	{"陈", "chen", 2, 7, 16, core.ElementFire, 60, core.GenderAny, core.StyleAny, core.SourceAny, "to display", ""},
	{"杨", "yang", 2, 7, 13, core.ElementWood, 60, core.GenderAny, core.StyleAny, core.SourceAny, "poplar", ""},
	{"黄", "huang", 2, 11, 12, core.ElementEarth, 60, core.GenderAny, core.StyleAny, core.SourceAny, "yellow", ""},
	{"赵", "zhao", 4, 9, 14, core.ElementFire, 60, core.GenderAny, core.StyleAny, core.SourceAny, "to hasten", ""},
	{"周", "zhou", 1, 8, 8, core.ElementMetal, 60, core.GenderAny, core.StyleAny, core.SourceAny, "circumference", ""},
	{"吴", "wu", 2, 7, 7, core.ElementWood, 60, core.GenderAny, core.StyleAny, core.SourceAny, "ancient state", ""},
	{"徐", "xu", 2, 10, 10, core.ElementMetal, 60, core.GenderAny, core.StyleAny, core.SourceAny, "unhurried", ""},
	{"孙", "sun", 1, 6, 10, core.ElementMetal, 60, core.GenderAny, core.StyleAny, core.SourceAny, "grandchild", ""},
	{"林", "lin", 2, 8, 8, core.ElementWood, 78, core.GenderAny, core.StyleAny, core.SourceAny, "forest", ""},
	{"何", "he", 2, 7, 7, core.ElementWood, 60, core.GenderAny, core.StyleAny, core.SourceAny, "to carry", ""},
	{"郭", "guo", 1, 10, 15, core.ElementWood, 60, core.GenderAny, core.StyleAny, core.SourceAny, "outer wall", ""},
	{"马", "ma", 3, 3, 10, core.ElementWater, 60, core.GenderAny, core.StyleAny, core.SourceAny, "horse", ""},
	{"欧", "ou", 1, 8, 15, core.ElementEarth, 60, core.GenderAny, core.StyleAny, core.SourceAny, "to sing", ""},
	{"阳", "yang", 2, 6, 17, core.ElementEarth, 82, core.GenderAny, core.StyleAny, core.SourceAny, "sunlight", ""},

	// Wood.
	{"杰", "jie", 2, 8, 12, core.ElementWood, 90, core.GenderMale, core.StyleModern, core.SourceAny, "outstanding", ""},
	{"梅", "mei", 2, 11, 11, core.ElementWood, 84, core.GenderFemale, core.StyleClassic, core.SourcePoetry, "plum blossom", "plum blossoms endure the late-winter cold"},
	{"松", "song", 1, 8, 8, core.ElementWood, 82, core.GenderMale, core.StyleClassic, core.SourceAny, "pine", ""},
	{"柏", "bai", 3, 9, 9, core.ElementWood, 80, core.GenderMale, core.StyleClassic, core.SourceAny, "cypress", ""},
	{"楠", "nan", 2, 13, 13, core.ElementWood, 85, core.GenderAny, core.StyleElegant, core.SourceAny, "camphor tree", ""},
	{"桐", "tong", 2, 10, 10, core.ElementWood, 83, core.GenderAny, core.StyleElegant, core.SourcePoetry, "paulownia", "the phoenix alights only on the paulownia"},
	{"芳", "fang", 1, 7, 10, core.ElementWood, 86, core.GenderFemale, core.StyleClassic, core.SourcePoetry, "fragrant", "a hundred grasses vie in fragrance"},
	{"芸", "yun", 2, 7, 10, core.ElementWood, 80, core.GenderFemale, core.StyleElegant, core.SourceAny, "rue herb", ""},
	{"莲", "lian", 2, 10, 17, core.ElementWood, 84, core.GenderFemale, core.StyleClassic, core.SourcePoetry, "lotus", "the lotus rises unstained from the mud"},
	{"兰", "lan", 2, 5, 23, core.ElementWood, 88, core.GenderFemale, core.StyleClassic, core.SourcePoetry, "orchid", "orchid and angelica grow by the Yuan and Li"},
	{"薇", "wei", 1, 16, 19, core.ElementWood, 82, core.GenderFemale, core.StyleElegant, core.SourcePoetry, "osmund fern", "we pluck the wei, the wei is sprouting"},
	{"菊", "ju", 2, 11, 14, core.ElementWood, 78, core.GenderFemale, core.StyleClassic, core.SourcePoetry, "chrysanthemum", "picking chrysanthemums by the eastern hedge"},
	{"芷", "zhi", 3, 7, 10, core.ElementWood, 85, core.GenderFemale, core.StyleClassic, core.SourcePoetry, "angelica", "angelica on the Yuan, orchids on the Li"},
	{"若", "ruo", 4, 8, 11, core.ElementWood, 81, core.GenderAny, core.StyleElegant, core.SourcePoetry, "as if, like", "as if returning with the wind"},
	{"颖", "ying", 3, 13, 16, core.ElementWood, 88, core.GenderFemale, core.StyleModern, core.SourceAny, "sharp-witted", ""},
	{"嘉", "jia", 1, 14, 14, core.ElementWood, 90, core.GenderAny, core.StyleClassic, core.SourceIdiom, "fine, praiseworthy", ""},
	{"栋", "dong", 4, 9, 12, core.ElementWood, 82, core.GenderMale, core.StyleClassic, core.SourceIdiom, "ridgepole, pillar of state", ""},
	{"荣", "rong", 2, 9, 14, core.ElementWood, 85, core.GenderAny, core.StyleClassic, core.SourceIdiom, "flourishing honor", ""},

	// Water.
	{"涛", "tao", 1, 10, 18, core.ElementWater, 84, core.GenderMale, core.StyleModern, core.SourceAny, "great waves", ""},
	{"洋", "yang", 2, 9, 10, core.ElementWater, 80, core.GenderMale, core.StyleModern, core.SourceAny, "ocean", ""},
	{"波", "bo", 1, 8, 9, core.ElementWater, 76, core.GenderMale, core.StyleModern, core.SourceAny, "ripples", ""},
	{"浩", "hao", 4, 10, 11, core.ElementWater, 89, core.GenderMale, core.StyleClassic, core.SourceIdiom, "vast, grand", ""},
	{"海", "hai", 3, 10, 11, core.ElementWater, 85, core.GenderMale, core.StyleAny, core.SourceIdiom, "sea", ""},
	{"清", "qing", 1, 11, 12, core.ElementWater, 88, core.GenderAny, core.StyleClassic, core.SourcePoetry, "clear, pure", "the clear stream mirrors the empty sky"},
	{"涵", "han", 2, 11, 12, core.ElementWater, 87, core.GenderAny, core.StyleElegant, core.SourceAny, "to contain, cultivated", ""},
	{"泽", "ze", 2, 8, 17, core.ElementWater, 88, core.GenderMale, core.StyleClassic, core.SourceIdiom, "pool, benefaction", ""},
	{"雨", "yu", 3, 8, 8, core.ElementWater, 82, core.GenderAny, core.StyleElegant, core.SourcePoetry, "rain", "the good rain knows its season"},
	{"雪", "xue", 3, 11, 11, core.ElementWater, 83, core.GenderFemale, core.StyleElegant, core.SourcePoetry, "snow", "willow catkins raised by the wind"},
	{"冰", "bing", 1, 6, 6, core.ElementWater, 80, core.GenderFemale, core.StyleElegant, core.SourcePoetry, "ice", "a heart of ice in a jade vessel"},
	{"雯", "wen", 2, 12, 12, core.ElementWater, 84, core.GenderFemale, core.StyleElegant, core.SourceAny, "patterned clouds", ""},
	{"沛", "pei", 4, 7, 8, core.ElementWater, 78, core.GenderMale, core.StyleClassic, core.SourceAny, "abundant", ""},
	{"文", "wen", 2, 4, 4, core.ElementWater, 90, core.GenderAny, core.StyleClassic, core.SourceIdiom, "literary grace", ""},
	{"博", "bo", 2, 12, 12, core.ElementWater, 91, core.GenderMale, core.StyleClassic, core.SourceIdiom, "broad learning", ""},
	{"慧", "hui", 4, 15, 15, core.ElementWater, 90, core.GenderFemale, core.StyleClassic, core.SourceAny, "wisdom", ""},
	{"华", "hua", 2, 6, 14, core.ElementWater, 86, core.GenderAny, core.StyleClassic, core.SourceIdiom, "splendor", ""},
	{"泓", "hong", 2, 8, 9, core.ElementWater, 81, core.GenderAny, core.StyleElegant, core.SourceAny, "deep clear water", ""},

	// Fire.
	{"明", "ming", 2, 8, 8, core.ElementFire, 90, core.GenderAny, core.StyleClassic, core.SourceIdiom, "bright", ""},
	{"晨", "chen", 2, 11, 11, core.ElementFire, 87, core.GenderAny, core.StyleModern, core.SourceAny, "dawn", ""},
	{"星", "xing", 1, 9, 9, core.ElementFire, 82, core.GenderAny, core.StyleModern, core.SourcePoetry, "star", "the stars hang low over the wide plain"},
	{"晓", "xiao", 3, 10, 16, core.ElementFire, 84, core.GenderAny, core.StyleElegant, core.SourcePoetry, "daybreak", "spring sleep misses the daybreak"},
	{"炎", "yan", 2, 8, 8, core.ElementFire, 72, core.GenderMale, core.StyleClassic, core.SourceAny, "blazing", ""},
	{"煜", "yu", 4, 13, 13, core.ElementFire, 86, core.GenderMale, core.StyleElegant, core.SourceAny, "radiant", ""},
	{"灿", "can", 4, 7, 17, core.ElementFire, 80, core.GenderAny, core.StyleModern, core.SourceAny, "brilliant", ""},
	{"丹", "dan", 1, 4, 4, core.ElementFire, 81, core.GenderFemale, core.StyleClassic, core.SourceIdiom, "cinnabar red", ""},
	{"昊", "hao", 4, 8, 8, core.ElementFire, 85, core.GenderMale, core.StyleModern, core.SourceAny, "vast sky", ""},
	{"曦", "xi", 1, 20, 20, core.ElementFire, 84, core.GenderFemale, core.StyleElegant, core.SourceAny, "first sunlight", ""},
	{"婷", "ting", 2, 12, 12, core.ElementFire, 85, core.GenderFemale, core.StyleModern, core.SourceAny, "graceful", ""},
	{"哲", "zhe", 2, 10, 12, core.ElementFire, 89, core.GenderMale, core.StyleClassic, core.SourceIdiom, "philosophical", ""},
	{"志", "zhi", 4, 7, 7, core.ElementFire, 87, core.GenderMale, core.StyleClassic, core.SourceIdiom, "aspiration", ""},
	{"德", "de", 2, 15, 15, core.ElementFire, 91, core.GenderMale, core.StyleClassic, core.SourceIdiom, "virtue", ""},
	{"夏", "xia", 4, 10, 10, core.ElementFire, 78, core.GenderFemale, core.StyleElegant, core.SourceAny, "summer", ""},
	{"晴", "qing", 2, 12, 12, core.ElementFire, 85, core.GenderFemale, core.StyleElegant, core.SourcePoetry, "clear sky", "sunlit and rain-washed, lovely either way"},

	// Metal.
	{"鑫", "xin", 1, 24, 24, core.ElementMetal, 82, core.GenderMale, core.StyleModern, core.SourceAny, "prosperity in gold", ""},
	{"锐", "rui", 4, 12, 15, core.ElementMetal, 84, core.GenderMale, core.StyleModern, core.SourceAny, "keen edge", ""},
	{"铭", "ming", 2, 11, 14, core.ElementMetal, 88, core.GenderMale, core.StyleClassic, core.SourceIdiom, "engraved remembrance", ""},
	{"钧", "jun", 1, 9, 12, core.ElementMetal, 83, core.GenderMale, core.StyleClassic, core.SourceAny, "weight of authority", ""},
	{"静", "jing", 4, 14, 16, core.ElementMetal, 87, core.GenderFemale, core.StyleClassic, core.SourceIdiom, "tranquil", ""},
	{"思", "si", 1, 9, 9, core.ElementMetal, 88, core.GenderAny, core.StyleClassic, core.SourcePoetry, "thoughtful", "blue, blue your collar; long, long my thoughts"},
	{"睿", "rui", 4, 14, 14, core.ElementMetal, 90, core.GenderAny, core.StyleElegant, core.SourceAny, "astute", ""},
	{"秋", "qiu", 1, 9, 9, core.ElementMetal, 80, core.GenderFemale, core.StyleClassic, core.SourcePoetry, "autumn", "autumn waters share one hue with the long sky"},
	{"瑞", "rui", 4, 13, 14, core.ElementMetal, 87, core.GenderAny, core.StyleClassic, core.SourceIdiom, "auspicious omen", ""},
	{"珊", "shan", 1, 9, 10, core.ElementMetal, 79, core.GenderFemale, core.StyleElegant, core.SourceAny, "coral", ""},
	{"诗", "shi", 1, 8, 13, core.ElementMetal, 86, core.GenderFemale, core.StyleElegant, core.SourcePoetry, "poetry", "poetry may rouse, observe, gather, and grieve"},
	{"铎", "duo", 2, 10, 21, core.ElementMetal, 75, core.GenderMale, core.StyleClassic, core.SourceAny, "ritual bell", ""},

	// Earth.
	{"宇", "yu", 3, 6, 6, core.ElementEarth, 89, core.GenderMale, core.StyleModern, core.SourceAny, "cosmos, bearing", ""},
	{"坤", "kun", 1, 8, 8, core.ElementEarth, 80, core.GenderMale, core.StyleClassic, core.SourceIdiom, "the receptive earth", ""},
	{"培", "pei", 2, 11, 11, core.ElementEarth, 78, core.GenderMale, core.StyleClassic, core.SourceAny, "to nurture", ""},
	{"城", "cheng", 2, 9, 10, core.ElementEarth, 77, core.GenderMale, core.StyleModern, core.SourceAny, "city wall", ""},
	{"磊", "lei", 3, 15, 15, core.ElementEarth, 81, core.GenderMale, core.StyleModern, core.SourceIdiom, "open and upright", ""},
	{"岩", "yan", 2, 8, 23, core.ElementEarth, 76, core.GenderMale, core.StyleModern, core.SourceAny, "crag", ""},
	{"轩", "xuan", 1, 7, 10, core.ElementEarth, 86, core.GenderMale, core.StyleElegant, core.SourceAny, "lofty carriage", ""},
	{"安", "an", 1, 6, 6, core.ElementEarth, 88, core.GenderAny, core.StyleClassic, core.SourceIdiom, "peace", ""},
	{"宁", "ning", 2, 5, 14, core.ElementEarth, 85, core.GenderAny, core.StyleClassic, core.SourceIdiom, "serenity", ""},
	{"怡", "yi", 2, 8, 9, core.ElementEarth, 86, core.GenderFemale, core.StyleElegant, core.SourceAny, "contentment", ""},
	{"悦", "yue", 4, 10, 11, core.ElementEarth, 85, core.GenderFemale, core.StyleModern, core.SourceAny, "delight", ""},
	{"婉", "wan", 3, 11, 11, core.ElementEarth, 84, core.GenderFemale, core.StyleClassic, core.SourcePoetry, "gentle grace", "a fair one, clear-browed and graceful"},
	{"依", "yi", 1, 8, 8, core.ElementEarth, 80, core.GenderFemale, core.StyleClassic, core.SourcePoetry, "to lean on", "when I left, the willows hung tender"},
	{"远", "yuan", 3, 7, 17, core.ElementEarth, 85, core.GenderMale, core.StyleClassic, core.SourceIdiom, "far-reaching", ""},
	{"伟", "wei", 3, 6, 11, core.ElementEarth, 84, core.GenderMale, core.StyleModern, core.SourceAny, "great", ""},
	{"垚", "yao", 2, 9, 9, core.ElementEarth, 72, core.GenderMale, core.StyleModern, core.SourceAny, "towering earth", ""},
}
