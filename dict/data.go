package dict

// defaultRecords is the embedded polyphonic table: common polyphonic
// characters with the phrases that pin down each reading. Phrases also feed
// the segmenter's custom word list via AllPhrases.
var defaultRecords = []struct {
	char    rune
	reading string
	phrases []string
}{
	{'长', "cháng", []string{"长袍", "长度", "长短", "长江", "长城", "长期", "长久", "长远", "长方形", "漫长", "特长", "擅长"}},
	{'长', "zhǎng", []string{"长大", "成长", "生长", "长高", "校长", "班长", "部长", "市长", "队长", "长辈", "家长", "长老"}},

	{'行', "xíng", []string{"行人", "行走", "行动", "旅行", "进行", "行为", "举行", "流行", "行李", "步行", "自行车"}},
	{'行', "háng", []string{"银行", "行业", "行列", "各行各业", "行情", "外行", "内行", "分行", "行家"}},

	{'重', "zhòng", []string{"重要", "重量", "体重", "严重", "尊重", "重点", "重视", "沉重", "重大"}},
	{'重', "chóng", []string{"重新", "重复", "重叠", "重来", "重申", "双重", "重逢"}},

	{'乐', "lè", []string{"快乐", "欢乐", "乐观", "乐趣", "娱乐", "可乐", "乐意"}},
	{'乐', "yuè", []string{"音乐", "乐器", "乐队", "乐曲", "声乐", "乐谱"}},

	{'为', "wéi", []string{"成为", "作为", "认为", "以为", "行为", "为首", "为难"}},
	{'为', "wèi", []string{"为了", "为什么", "因为", "为何", "为此"}},

	{'和', "hé", []string{"和平", "和谐", "和气", "总和", "温和", "和睦"}},
	{'和', "hè", []string{"附和", "应和", "唱和"}},
	{'和', "huó", []string{"和面", "和泥"}},
	{'和', "huò", []string{"和药", "搅和"}},

	{'着', "zhe", []string{"看着", "走着", "听着", "说着", "拿着", "坐着"}},
	{'着', "zháo", []string{"着急", "着火", "着凉", "睡着", "着迷"}},
	{'着', "zhuó", []string{"穿着", "着装", "着手", "着陆", "沉着"}},

	{'了', "le", []string{"算了", "罢了", "好了", "走了"}},
	{'了', "liǎo", []string{"了解", "了不起", "了结", "一目了然", "受不了"}},

	{'还', "hái", []string{"还有", "还是", "还在", "还要", "还没"}},
	{'还', "huán", []string{"还钱", "归还", "还书", "偿还", "还债"}},

	{'得', "dé", []string{"得到", "获得", "取得", "得意", "得分", "心得"}},
	{'得', "de", []string{"觉得", "记得", "显得", "懂得", "值得"}},
	{'得', "děi", []string{"总得", "非得"}},

	{'都', "dōu", []string{"都是", "都有", "全都"}},
	{'都', "dū", []string{"首都", "都市", "都城", "建都", "古都"}},

	{'发', "fā", []string{"发现", "发展", "发生", "出发", "发明", "发表"}},
	{'发', "fà", []string{"头发", "理发", "发型", "白发", "毛发"}},

	{'觉', "jué", []string{"觉得", "感觉", "自觉", "发觉", "觉悟"}},
	{'觉', "jiào", []string{"睡觉", "午觉", "一觉"}},

	{'教', "jiāo", []string{"教书", "教给"}},
	{'教', "jiào", []string{"教育", "教师", "教室", "宗教", "请教", "教授"}},

	{'干', "gān", []string{"干净", "干燥", "饼干", "干杯", "干脆"}},
	{'干', "gàn", []string{"干活", "干部", "能干", "干劲", "苦干"}},

	{'空', "kōng", []string{"天空", "空气", "空间", "空中", "太空"}},
	{'空', "kòng", []string{"空闲", "填空", "空地", "有空", "抽空"}},

	{'中', "zhōng", []string{"中国", "中间", "中心", "中学", "其中"}},
	{'中', "zhòng", []string{"中奖", "中毒", "击中", "中暑", "猜中"}},

	{'地', "dì", []string{"土地", "地方", "地球", "地图", "地面"}},
	{'地', "de", []string{"慢慢地", "轻轻地", "悄悄地", "渐渐地"}},

	{'传', "chuán", []string{"传说", "传统", "传播", "流传", "宣传"}},
	{'传', "zhuàn", []string{"传记", "自传", "水浒传", "列传"}},

	{'数', "shù", []string{"数字", "数学", "数量", "分数", "次数"}},
	{'数', "shǔ", []string{"数一数", "数不清", "数落", "屈指可数"}},

	{'难', "nán", []string{"困难", "难题", "难过", "难受", "艰难"}},
	{'难', "nàn", []string{"灾难", "难民", "遇难", "避难", "患难"}},

	{'调', "diào", []string{"调查", "声调", "调动", "语调", "曲调"}},
	{'调', "tiáo", []string{"调整", "调节", "空调", "调皮", "协调"}},

	{'曲', "qū", []string{"弯曲", "曲线", "曲折", "曲别针"}},
	{'曲', "qǔ", []string{"歌曲", "乐曲", "曲子", "作曲", "戏曲"}},

	{'将', "jiāng", []string{"将要", "将来", "即将", "将军"}},
	{'将', "jiàng", []string{"大将", "将领", "将士", "上将"}},

	{'好', "hǎo", []string{"好人", "你好", "好看", "美好", "好事", "好处"}},
	{'好', "hào", []string{"爱好", "好奇", "好客", "好学", "嗜好"}},

	{'省', "shěng", []string{"省份", "节省", "省钱", "省会"}},
	{'省', "xǐng", []string{"反省", "省亲", "不省人事"}},

	{'相', "xiāng", []string{"相信", "互相", "相同", "相似", "相处"}},
	{'相', "xiàng", []string{"相片", "照相", "相机", "首相", "长相"}},

	{'兴', "xīng", []string{"兴奋", "兴旺", "兴起", "振兴"}},
	{'兴', "xìng", []string{"高兴", "兴趣", "兴致", "扫兴"}},

	{'背', "bēi", []string{"背包", "背负", "背筐"}},
	{'背', "bèi", []string{"背后", "背景", "后背", "背诵", "背书"}},

	{'切', "qiē", []string{"切菜", "切开", "切割"}},
	{'切', "qiè", []string{"一切", "亲切", "密切", "急切"}},

	{'便', "biàn", []string{"方便", "便利", "随便", "顺便"}},
	{'便', "pián", []string{"便宜"}},

	{'降', "jiàng", []string{"下降", "降落", "降低", "降温"}},
	{'降', "xiáng", []string{"投降", "降服"}},

	{'藏', "cáng", []string{"收藏", "躲藏", "隐藏", "藏起来"}},
	{'藏', "zàng", []string{"西藏", "藏族", "宝藏"}},

	{'答', "dá", []string{"回答", "答案", "答复", "报答"}},
	{'答', "dā", []string{"答应", "答理"}},
}
