package recognition

import (
	"strings"

	"github.com/lucasferrer/freshkeep-backend/pkg/enums"
)

type catalogEntry struct {
	category      enums.ItemCategory
	nameZH        string
	shelfLifeDays int
}

// catalog is the built-in food knowledge base: canonical english name to
// category, localized name, and default shelf life in days.
var catalog = map[string]catalogEntry{
	"apple":      {enums.ItemCategoryFruits, "苹果", 14},
	"banana":     {enums.ItemCategoryFruits, "香蕉", 5},
	"orange":     {enums.ItemCategoryFruits, "橙子", 10},
	"grape":      {enums.ItemCategoryFruits, "葡萄", 7},
	"strawberry": {enums.ItemCategoryFruits, "草莓", 3},
	"watermelon": {enums.ItemCategoryFruits, "西瓜", 7},
	"pineapple":  {enums.ItemCategoryFruits, "菠萝", 5},
	"mango":      {enums.ItemCategoryFruits, "芒果", 5},
	"peach":      {enums.ItemCategoryFruits, "桃子", 5},
	"pear":       {enums.ItemCategoryFruits, "梨", 7},
	"cherry":     {enums.ItemCategoryFruits, "樱桃", 3},
	"kiwi":       {enums.ItemCategoryFruits, "猕猴桃", 7},
	"lemon":      {enums.ItemCategoryFruits, "柠檬", 21},
	"lime":       {enums.ItemCategoryFruits, "青柠", 14},
	"avocado":    {enums.ItemCategoryFruits, "牛油果", 5},

	"tomato":   {enums.ItemCategoryVegetables, "番茄", 7},
	"carrot":   {enums.ItemCategoryVegetables, "胡萝卜", 14},
	"broccoli": {enums.ItemCategoryVegetables, "西兰花", 5},
	"lettuce":  {enums.ItemCategoryVegetables, "生菜", 7},
	"spinach":  {enums.ItemCategoryVegetables, "菠菜", 5},
	"potato":   {enums.ItemCategoryVegetables, "土豆", 30},
	"onion":    {enums.ItemCategoryVegetables, "洋葱", 21},
	"garlic":   {enums.ItemCategoryVegetables, "大蒜", 30},
	"cucumber": {enums.ItemCategoryVegetables, "黄瓜", 7},
	"pepper":   {enums.ItemCategoryVegetables, "辣椒", 7},
	"cabbage":  {enums.ItemCategoryVegetables, "白菜", 14},
	"corn":     {enums.ItemCategoryVegetables, "玉米", 3},
	"mushroom": {enums.ItemCategoryVegetables, "蘑菇", 5},
	"celery":   {enums.ItemCategoryVegetables, "芹菜", 7},
	"eggplant": {enums.ItemCategoryVegetables, "茄子", 7},

	"chicken": {enums.ItemCategoryMeat, "鸡肉", 2},
	"beef":    {enums.ItemCategoryMeat, "牛肉", 3},
	"pork":    {enums.ItemCategoryMeat, "猪肉", 3},
	"fish":    {enums.ItemCategoryMeat, "鱼", 2},
	"salmon":  {enums.ItemCategoryMeat, "三文鱼", 2},
	"tuna":    {enums.ItemCategoryMeat, "金枪鱼", 2},
	"shrimp":  {enums.ItemCategoryMeat, "虾", 2},
	"crab":    {enums.ItemCategoryMeat, "螃蟹", 2},
	"lobster": {enums.ItemCategoryMeat, "龙虾", 2},
	"turkey":  {enums.ItemCategoryMeat, "火鸡", 3},
	"duck":    {enums.ItemCategoryMeat, "鸭肉", 3},
	"lamb":    {enums.ItemCategoryMeat, "羊肉", 3},
	"bacon":   {enums.ItemCategoryMeat, "培根", 7},
	"sausage": {enums.ItemCategoryMeat, "香肠", 7},
	"ham":     {enums.ItemCategoryMeat, "火腿", 7},

	"milk":      {enums.ItemCategoryDairy, "牛奶", 7},
	"cheese":    {enums.ItemCategoryDairy, "奶酪", 14},
	"yogurt":    {enums.ItemCategoryDairy, "酸奶", 7},
	"butter":    {enums.ItemCategoryDairy, "黄油", 14},
	"cream":     {enums.ItemCategoryDairy, "奶油", 5},
	"ice cream": {enums.ItemCategoryDairy, "冰淇淋", 30},

	"bread":  {enums.ItemCategoryGrains, "面包", 5},
	"rice":   {enums.ItemCategoryGrains, "米饭", 365},
	"pasta":  {enums.ItemCategoryGrains, "意大利面", 365},
	"noodle": {enums.ItemCategoryGrains, "面条", 365},
	"cereal": {enums.ItemCategoryGrains, "谷物", 365},
	"oats":   {enums.ItemCategoryGrains, "燕麦", 365},
	"quinoa": {enums.ItemCategoryGrains, "藜麦", 365},
	"wheat":  {enums.ItemCategoryGrains, "小麦", 365},

	"cookie":    {enums.ItemCategorySnacks, "饼干", 30},
	"chip":      {enums.ItemCategorySnacks, "薯片", 30},
	"chocolate": {enums.ItemCategorySnacks, "巧克力", 60},
	"candy":     {enums.ItemCategorySnacks, "糖果", 90},
	"cake":      {enums.ItemCategorySnacks, "蛋糕", 3},
	"biscuit":   {enums.ItemCategorySnacks, "饼干", 30},
	"cracker":   {enums.ItemCategorySnacks, "苏打饼干", 60},

	"juice":  {enums.ItemCategoryBeverages, "果汁", 7},
	"soda":   {enums.ItemCategoryBeverages, "汽水", 90},
	"water":  {enums.ItemCategoryBeverages, "水", 365},
	"tea":    {enums.ItemCategoryBeverages, "茶", 365},
	"coffee": {enums.ItemCategoryBeverages, "咖啡", 365},
	"beer":   {enums.ItemCategoryBeverages, "啤酒", 90},
	"wine":   {enums.ItemCategoryBeverages, "红酒", 365},
}

var categoryShelfLife = map[enums.ItemCategory]int{
	enums.ItemCategoryFruits:     7,
	enums.ItemCategoryVegetables: 5,
	enums.ItemCategoryMeat:       3,
	enums.ItemCategoryDairy:      7,
	enums.ItemCategoryGrains:     30,
	enums.ItemCategorySnacks:     30,
	enums.ItemCategoryBeverages:  30,
}

const fallbackShelfLifeDays = 7

// InferCategory guesses the category from a free-form item name.
// Substring matching runs both ways so "red apple" and "app" both hit "apple".
func InferCategory(name string) enums.ItemCategory {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if normalized == "" {
		return enums.ItemCategoryOther
	}
	if entry, ok := catalog[normalized]; ok {
		return entry.category
	}
	for food, entry := range catalog {
		if strings.Contains(normalized, food) || strings.Contains(food, normalized) {
			return entry.category
		}
	}
	return enums.ItemCategoryOther
}

// DefaultShelfLifeDays suggests a shelf life: exact name first, then
// category, then a conservative fallback.
func DefaultShelfLifeDays(name string, category enums.ItemCategory) int {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if entry, ok := catalog[normalized]; ok {
		return entry.shelfLifeDays
	}
	if days, ok := categoryShelfLife[category]; ok {
		return days
	}
	return fallbackShelfLifeDays
}

func localizedName(name, language string) string {
	if language != "zh" {
		return name
	}
	if entry, ok := catalog[strings.ToLower(name)]; ok && entry.nameZH != "" {
		return entry.nameZH
	}
	return name
}
