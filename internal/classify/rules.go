package classify

// DefaultRules returns the built-in rule set. Returned as a fresh slice so
// callers can extend it with AddRule without affecting other callers.
func DefaultRules() []Rule {
	return []Rule{
		{
			ID:            "tech",
			Category:      "Development",
			TitleKeywords: []string{"编程", "开发", "代码", "框架", "API", "库"},
			URLDomains:    []string{"github.com", "stackoverflow.com", "developer.mozilla.org", "reactjs.org"},
			Priority:      10,
		},
		{
			ID:            "news",
			Category:      "News",
			TitleKeywords: []string{"新闻", "时事", "报道"},
			URLPatterns:   []string{"/news", "xinwen"},
			Priority:      10,
		},
		{
			ID:            "entertainment",
			Category:      "Entertainment",
			TitleKeywords: []string{"娱乐", "电影", "音乐", "游戏", "视频", "动漫"},
			URLDomains:    []string{"youtube.com", "vimeo.com", "bilibili.com"},
			Priority:      10,
		},
		{
			ID:            "education",
			Category:      "Education",
			TitleKeywords: []string{"学习", "教程", "课程", "教育", "知识", "培训"},
			URLPatterns:   []string{"/edu", "/course", "/tutorial"},
			Priority:      10,
		},
		{
			ID:            "shopping",
			Category:      "Shopping",
			TitleKeywords: []string{"购物", "商品", "购买", "商城", "店铺"},
			URLDomains:    []string{"amazon.com", "taobao.com", "jd.com", "tmall.com", "shopify.com"},
			URLPatterns:   []string{"/shop", "/buy", "/store"},
			Priority:      10,
		},
		{
			ID:            "social",
			Category:      "Social",
			TitleKeywords: []string{"社交", "社区", "论坛"},
			URLDomains:    []string{"facebook.com", "twitter.com", "weibo.com", "zhihu.com", "reddit.com"},
			Priority:      10,
		},
		{
			ID:            "docs",
			Category:      "Docs",
			TitleKeywords: []string{"文档", "docs", "文档中心"},
			URLPatterns:   []string{"/docs", "/documentation"},
			Priority:      8,
		},
	}
}
