package grocery

import "sort"

// Ingredient categories.
const (
	CategoryProteins    = "proteins"
	CategoryVegetables  = "vegetables"
	CategoryFruits      = "fruits"
	CategoryDairy       = "dairy"
	CategoryGrains      = "grains"
	CategoryPantry      = "pantry"
	CategoryHerbsSpices = "herbs_spices"
	CategoryCondiments  = "condiments"
	CategoryFrozen      = "frozen"
	CategorySnacks      = "snacks"
	CategoryBeverages   = "beverages"
)

// Store units a shopper buys in, distinct from recipe-line units.
const (
	UnitEach      = "each"
	UnitLbs       = "lbs"
	UnitDozen     = "dozen"
	UnitBag       = "bag"
	UnitContainer = "container"
	UnitBottle    = "bottle"
	UnitJar       = "jar"
	UnitCan       = "can"
	UnitHead      = "head"
	UnitBunch     = "bunch"
	UnitPackage   = "package"
	UnitCarton    = "carton"
	UnitBox       = "box"
	UnitGallon    = "gallon"
	UnitPint      = "pint"
)

// Entry is one canonical ingredient record.
type Entry struct {
	Category       string
	StoreUnit      string
	CostPerUnit    float64
	TypicalServing float64
}

// Lexicon is the process-wide ingredient table. It is built once at startup
// and read-only afterwards.
type Lexicon struct {
	entries    map[string]Entry
	aliases    map[string]string
	sortedKeys []string
}

// NewLexicon builds the default curated lexicon.
func NewLexicon() *Lexicon {
	l := &Lexicon{
		entries: defaultEntries(),
		aliases: defaultAliases(),
	}
	l.sortedKeys = make([]string, 0, len(l.entries))
	for k := range l.entries {
		l.sortedKeys = append(l.sortedKeys, k)
	}
	sort.Strings(l.sortedKeys)
	return l
}

// Lookup returns the entry for an exact canonical key.
func (l *Lexicon) Lookup(key string) (Entry, bool) {
	e, ok := l.entries[key]
	return e, ok
}

// Alias resolves a known alias to its canonical key.
func (l *Lexicon) Alias(name string) (string, bool) {
	key, ok := l.aliases[name]
	return key, ok
}

// Keys returns all canonical keys in sorted order. Sorted iteration keeps
// fuzzy-match tie resolution deterministic.
func (l *Lexicon) Keys() []string {
	return l.sortedKeys
}

// Len reports the number of canonical entries.
func (l *Lexicon) Len() int {
	return len(l.entries)
}

// categoryDisplay maps category keys to the display names used in reports.
var categoryDisplay = map[string]string{
	CategoryProteins:    "Proteins",
	CategoryVegetables:  "Vegetables",
	CategoryFruits:      "Fruits",
	CategoryDairy:       "Dairy",
	CategoryGrains:      "Grains",
	CategoryPantry:      "Pantry",
	CategoryHerbsSpices: "Herbs & Spices",
	CategoryCondiments:  "Condiments",
	CategoryFrozen:      "Frozen",
	CategorySnacks:      "Snacks",
	CategoryBeverages:   "Beverages",
}

// categoryOrder fixes the aisle ordering of the final list.
var categoryOrder = map[string]int{
	CategoryProteins:    1,
	CategoryVegetables:  2,
	CategoryFruits:      3,
	CategoryDairy:       4,
	CategoryGrains:      5,
	CategoryPantry:      6,
	CategoryHerbsSpices: 7,
	CategoryCondiments:  8,
	CategoryFrozen:      9,
	CategorySnacks:      10,
	CategoryBeverages:   11,
}

// CategoryDisplayName returns the display form of a category key.
func CategoryDisplayName(category string) string {
	if name, ok := categoryDisplay[category]; ok {
		return name
	}
	return "Other"
}

// discreteUnits are store units purchased in whole counts.
var discreteUnits = map[string]bool{
	UnitEach:      true,
	UnitBag:       true,
	UnitCan:       true,
	UnitBottle:    true,
	UnitJar:       true,
	UnitContainer: true,
	UnitPackage:   true,
	UnitBox:       true,
	UnitBunch:     true,
	UnitHead:      true,
	UnitCarton:    true,
	UnitDozen:     true,
	"item":        true,
	"piece":       true,
}

func defaultEntries() map[string]Entry {
	return map[string]Entry{
		// proteins
		"chicken breast": {CategoryProteins, UnitLbs, 6.99, 0.5},
		"chicken thighs": {CategoryProteins, UnitLbs, 3.99, 0.5},
		"ground beef":    {CategoryProteins, UnitLbs, 5.99, 0.33},
		"ground turkey":  {CategoryProteins, UnitLbs, 5.49, 0.33},
		"turkey breast":  {CategoryProteins, UnitLbs, 7.99, 0.5},
		"pork chops":     {CategoryProteins, UnitLbs, 4.99, 0.5},
		"steak":          {CategoryProteins, UnitLbs, 10.99, 0.5},
		"salmon":         {CategoryProteins, UnitLbs, 9.99, 0.5},
		"shrimp":         {CategoryProteins, UnitLbs, 8.99, 0.25},
		"tuna":           {CategoryProteins, UnitCan, 1.79, 1},
		"eggs":           {CategoryProteins, UnitDozen, 3.49, 0.08},
		"tofu":           {CategoryProteins, UnitPackage, 2.49, 0.5},
		"bacon":          {CategoryProteins, UnitPackage, 5.99, 0.25},

		// vegetables
		"garlic":       {CategoryVegetables, UnitHead, 0.79, 0.1},
		"onion":        {CategoryVegetables, UnitEach, 0.89, 0.5},
		"green onions": {CategoryVegetables, UnitBunch, 1.19, 0.25},
		"tomato":       {CategoryVegetables, UnitEach, 0.99, 0.5},
		"spinach":      {CategoryVegetables, UnitBag, 2.99, 0.25},
		"kale":         {CategoryVegetables, UnitBunch, 2.29, 0.3},
		"lettuce":      {CategoryVegetables, UnitHead, 1.79, 0.3},
		"broccoli":     {CategoryVegetables, UnitHead, 1.99, 0.5},
		"cauliflower":  {CategoryVegetables, UnitHead, 2.99, 0.5},
		"carrots":      {CategoryVegetables, UnitBag, 1.49, 0.2},
		"celery":       {CategoryVegetables, UnitBunch, 1.99, 0.2},
		"bell pepper":  {CategoryVegetables, UnitEach, 1.29, 0.5},
		"jalapeno":     {CategoryVegetables, UnitEach, 0.39, 0.5},
		"cucumber":     {CategoryVegetables, UnitEach, 0.99, 0.5},
		"zucchini":     {CategoryVegetables, UnitEach, 1.19, 0.5},
		"mushrooms":    {CategoryVegetables, UnitContainer, 2.49, 0.5},
		"potato":       {CategoryVegetables, UnitBag, 3.99, 0.15},
		"sweet potato": {CategoryVegetables, UnitEach, 1.09, 1},
		"asparagus":    {CategoryVegetables, UnitBunch, 3.49, 0.5},
		"green beans":  {CategoryVegetables, UnitBag, 2.79, 0.4},
		"corn":         {CategoryVegetables, UnitEach, 0.69, 1},
		"avocado":      {CategoryVegetables, UnitEach, 1.49, 0.5},
		"ginger":       {CategoryVegetables, UnitEach, 1.29, 0.2},
		"cabbage":      {CategoryVegetables, UnitHead, 1.89, 0.25},

		// fruits
		"banana":       {CategoryFruits, UnitBunch, 1.29, 0.2},
		"apple":        {CategoryFruits, UnitBag, 4.49, 0.15},
		"orange":       {CategoryFruits, UnitBag, 4.99, 0.15},
		"lemon":        {CategoryFruits, UnitEach, 0.69, 0.5},
		"lime":         {CategoryFruits, UnitEach, 0.49, 0.5},
		"strawberries": {CategoryFruits, UnitContainer, 3.99, 0.5},
		"blueberries":  {CategoryFruits, UnitContainer, 3.49, 0.5},
		"grapes":       {CategoryFruits, UnitBag, 4.29, 0.3},
		"mango":        {CategoryFruits, UnitEach, 1.49, 0.5},
		"pineapple":    {CategoryFruits, UnitEach, 2.99, 0.3},

		// dairy
		"milk":            {CategoryDairy, UnitGallon, 3.79, 0.1},
		"butter":          {CategoryDairy, UnitPackage, 4.29, 0.1},
		"cheddar cheese":  {CategoryDairy, UnitPackage, 3.99, 0.2},
		"mozzarella":      {CategoryDairy, UnitPackage, 3.79, 0.25},
		"parmesan cheese": {CategoryDairy, UnitContainer, 4.99, 0.1},
		"feta cheese":     {CategoryDairy, UnitContainer, 3.99, 0.2},
		"greek yogurt":    {CategoryDairy, UnitContainer, 4.49, 0.25},
		"yogurt":          {CategoryDairy, UnitContainer, 3.49, 0.25},
		"cream cheese":    {CategoryDairy, UnitPackage, 2.49, 0.2},
		"sour cream":      {CategoryDairy, UnitContainer, 2.29, 0.15},
		"heavy cream":     {CategoryDairy, UnitPint, 3.29, 0.2},

		// grains
		"rice":       {CategoryGrains, UnitBag, 3.49, 0.1},
		"brown rice": {CategoryGrains, UnitBag, 3.99, 0.1},
		"quinoa":     {CategoryGrains, UnitBag, 5.99, 0.1},
		"pasta":      {CategoryGrains, UnitBox, 1.79, 0.3},
		"spaghetti":  {CategoryGrains, UnitBox, 1.79, 0.3},
		"noodles":    {CategoryGrains, UnitPackage, 2.49, 0.3},
		"bread":      {CategoryGrains, UnitPackage, 2.99, 0.1},
		"tortillas":  {CategoryGrains, UnitPackage, 3.29, 0.2},
		"oats":       {CategoryGrains, UnitContainer, 3.99, 0.08},
		"flour":      {CategoryGrains, UnitBag, 3.49, 0.05},
		"couscous":   {CategoryGrains, UnitBox, 2.99, 0.2},

		// pantry
		"olive oil":       {CategoryPantry, UnitBottle, 7.99, 0.02},
		"vegetable oil":   {CategoryPantry, UnitBottle, 4.99, 0.02},
		"coconut oil":     {CategoryPantry, UnitJar, 6.99, 0.03},
		"sugar":           {CategoryPantry, UnitBag, 2.99, 0.02},
		"brown sugar":     {CategoryPantry, UnitBag, 2.79, 0.03},
		"honey":           {CategoryPantry, UnitBottle, 5.99, 0.03},
		"peanut butter":   {CategoryPantry, UnitJar, 3.99, 0.08},
		"black beans":     {CategoryPantry, UnitCan, 0.99, 1},
		"kidney beans":    {CategoryPantry, UnitCan, 0.99, 1},
		"chickpeas":       {CategoryPantry, UnitCan, 1.09, 1},
		"lentils":         {CategoryPantry, UnitBag, 2.49, 0.15},
		"diced tomatoes":  {CategoryPantry, UnitCan, 1.19, 1},
		"tomato paste":    {CategoryPantry, UnitCan, 0.89, 0.5},
		"tomato sauce":    {CategoryPantry, UnitCan, 1.29, 1},
		"coconut milk":    {CategoryPantry, UnitCan, 2.19, 1},
		"chicken broth":   {CategoryPantry, UnitCarton, 2.49, 0.5},
		"vegetable broth": {CategoryPantry, UnitCarton, 2.49, 0.5},
		"baking powder":   {CategoryPantry, UnitContainer, 1.99, 0.02},
		"baking soda":     {CategoryPantry, UnitBox, 0.99, 0.02},
		"vanilla extract": {CategoryPantry, UnitBottle, 4.99, 0.01},
		"breadcrumbs":     {CategoryPantry, UnitContainer, 2.29, 0.1},
		"almonds":         {CategoryPantry, UnitBag, 6.99, 0.1},
		"walnuts":         {CategoryPantry, UnitBag, 7.49, 0.1},
		"chia seeds":      {CategoryPantry, UnitBag, 5.99, 0.05},

		// herbs & spices
		"salt":                 {CategoryHerbsSpices, UnitContainer, 1.49, 0.01},
		"black pepper":         {CategoryHerbsSpices, UnitContainer, 2.99, 0.01},
		"cumin":                {CategoryHerbsSpices, UnitJar, 2.49, 0.02},
		"paprika":              {CategoryHerbsSpices, UnitJar, 2.49, 0.02},
		"chili powder":         {CategoryHerbsSpices, UnitJar, 2.49, 0.02},
		"oregano":              {CategoryHerbsSpices, UnitJar, 1.99, 0.02},
		"basil":                {CategoryHerbsSpices, UnitBunch, 2.29, 0.2},
		"cilantro":             {CategoryHerbsSpices, UnitBunch, 1.29, 0.25},
		"parsley":              {CategoryHerbsSpices, UnitBunch, 1.49, 0.25},
		"thyme":                {CategoryHerbsSpices, UnitJar, 2.29, 0.02},
		"rosemary":             {CategoryHerbsSpices, UnitJar, 2.29, 0.02},
		"cinnamon":             {CategoryHerbsSpices, UnitJar, 2.49, 0.02},
		"turmeric":             {CategoryHerbsSpices, UnitJar, 2.79, 0.02},
		"curry powder":         {CategoryHerbsSpices, UnitJar, 2.99, 0.03},
		"garlic powder":        {CategoryHerbsSpices, UnitJar, 2.29, 0.02},
		"onion powder":         {CategoryHerbsSpices, UnitJar, 2.19, 0.02},
		"red pepper flakes":    {CategoryHerbsSpices, UnitJar, 2.39, 0.01},
		"bay leaves":           {CategoryHerbsSpices, UnitJar, 1.99, 0.02},
		"italian seasoning":    {CategoryHerbsSpices, UnitJar, 2.49, 0.02},
		"everything seasoning": {CategoryHerbsSpices, UnitJar, 2.99, 0.02},

		// condiments
		"soy sauce":             {CategoryCondiments, UnitBottle, 2.99, 0.03},
		"ketchup":               {CategoryCondiments, UnitBottle, 2.49, 0.03},
		"mustard":               {CategoryCondiments, UnitBottle, 1.99, 0.02},
		"mayonnaise":            {CategoryCondiments, UnitJar, 3.99, 0.04},
		"hot sauce":             {CategoryCondiments, UnitBottle, 2.79, 0.02},
		"salsa":                 {CategoryCondiments, UnitJar, 2.99, 0.2},
		"barbecue sauce":        {CategoryCondiments, UnitBottle, 2.99, 0.04},
		"worcestershire sauce":  {CategoryCondiments, UnitBottle, 2.99, 0.02},
		"balsamic vinegar":      {CategoryCondiments, UnitBottle, 4.49, 0.02},
		"apple cider vinegar":   {CategoryCondiments, UnitBottle, 3.49, 0.02},
		"maple syrup":           {CategoryCondiments, UnitBottle, 6.99, 0.04},
		"sesame oil":            {CategoryCondiments, UnitBottle, 5.49, 0.02},
		"ranch dressing":        {CategoryCondiments, UnitBottle, 3.29, 0.05},
		"hummus":                {CategoryCondiments, UnitContainer, 3.49, 0.25},

		// frozen (descriptor stripping removes the word "frozen" from lines,
		// so keys carry the bare name)
		"peas":      {CategoryFrozen, UnitBag, 1.99, 0.3},
		"edamame":   {CategoryFrozen, UnitBag, 2.99, 0.3},
		"ice cream": {CategoryFrozen, UnitContainer, 4.99, 0.1},

		// snacks
		"granola bars":   {CategorySnacks, UnitBox, 3.99, 0.15},
		"crackers":       {CategorySnacks, UnitBox, 2.99, 0.2},
		"tortilla chips": {CategorySnacks, UnitBag, 3.49, 0.25},
		"popcorn":        {CategorySnacks, UnitBag, 2.99, 0.2},
		"trail mix":      {CategorySnacks, UnitBag, 5.99, 0.15},

		// beverages
		"orange juice":    {CategoryBeverages, UnitCarton, 3.99, 0.15},
		"coffee":          {CategoryBeverages, UnitBag, 8.99, 0.03},
		"green tea":       {CategoryBeverages, UnitBox, 3.49, 0.05},
		"almond milk":     {CategoryBeverages, UnitCarton, 3.29, 0.1},
		"sparkling water": {CategoryBeverages, UnitBottle, 1.29, 1},
	}
}

func defaultAliases() map[string]string {
	return map[string]string{
		"beef":              "ground beef",
		"chicken":           "chicken breast",
		"turkey":            "ground turkey",
		"pork":              "pork chops",
		"egg":               "eggs",
		"scallions":         "green onions",
		"green onion":       "green onions",
		"spring onions":     "green onions",
		"cheese":            "cheddar cheese",
		"yoghurt":           "yogurt",
		"chickpea":          "chickpeas",
		"garbanzo beans":    "chickpeas",
		"coriander":         "cilantro",
		"bell peppers":      "bell pepper",
		"red onion":         "onion",
		"yellow onion":      "onion",
		"white onion":       "onion",
		"roma tomato":       "tomato",
		"cherry tomatoes":   "tomato",
		"russet potato":     "potato",
		"scallion":          "green onions",
		"oatmeal":           "oats",
		"whole wheat bread": "bread",
		"evoo":              "olive oil",
		"stock":             "chicken broth",
	}
}
