package vocab

// Default returns the stock vocabulary shipped with cinesift. Deployments
// override or extend these lists through configuration.
func Default() Technical {
	return Technical{
		Quality: []string{
			"480p", "480i", "576p", "576i", "720p", "720i", "1080p", "1080i",
			"2160p", "4320p", "4k", "8k", "uhd", "ultrahd", "hd", "sd", "fhd",
		},
		Source: []string{
			"bluray", "blu-ray", "bdrip", "brrip", "bdremux", "remux", "hdrip",
			"dvd", "dvdrip", "dvdscr", "dvd-rip",
			"webrip", "web-dl", "webdl", "web", "web-rip",
			"hdtv", "pdtv", "tvrip", "dsr",
			"netflix", "nf", "amzn", "amazon", "hulu", "dsnp", "hbo", "hmax", "atvp", "itunes",
			"cam", "ts", "tc", "telesync", "telecine", "screener", "scr",
		},
		Audio: []string{
			"aac", "ac3", "eac3", "dts", "dts-hd", "dtshd", "dts-x", "truehd",
			"atmos", "flac", "mp3", "opus", "ddp", "dd5.1", "ddp5.1", "dd2.0",
			"7.1", "5.1", "2.0", "4audio", "2audio", "dualaudio",
		},
		Codec: []string{
			"x264", "x265", "h264", "h265", "h.264", "h.265", "hevc", "avc",
			"av1", "vp9", "xvid", "divx", "mpeg2", "mpeg4",
		},
		Groups: []string{
			"frds", "wiki", "chd", "cmct", "hdchina", "ttg", "mteam",
			"sparks", "rarbg", "yify", "yts", "fgt", "ntb", "flux",
		},
		Noise: []string{
			"10bit", "8bit", "12bit", "hi10p", "hdr", "hdr10", "hdr10+",
			"dolby", "vision", "dovi", "dv", "sdr", "imax",
			"proper", "repack", "rerip", "internal", "limited", "complete",
			"remastered", "restored", "extended", "unrated", "uncut",
			"multi", "multisub", "multisubs", "dubbed", "subbed", "subs", "sub",
			"hq", "hc", "nfo", "readnfo", "muhd", "mnhd",
			"mkv", "mp4", "avi", "ws", "fs",
		},
		ProtectedMarkers: []string{
			"7.1", "5.1", "2.0", "DDP5.1", "DD5.1", "DD2.0", "H.264", "H.265",
		},
		CJKNoisePhrases: []string{
			"国语中字", "中英字幕", "中文字幕", "双语字幕", "高清", "蓝光",
			"国粤双语", "简繁字幕", "未删减版", "修复版", "完整版", "特效字幕",
		},
		KnownTitles: []string{
			// CJK words that look like noise ratios but are real title text.
			"英雄", "无间道", "功夫",
		},
		CommonWords: []string{
			"the", "a", "an", "of", "and", "in", "on", "to", "man", "war",
		},
	}
}
