package domain

type CatalogItem struct {
	Title       string
	Minutes     int
	Description string
	VideoURL    string
}

var catalog = []CatalogItem{
	{Title: "Утренняя медитация", Minutes: 10, Description: "Начните день с позитивной энергией и ясностью ума", VideoURL: "https://www.youtube.com/embed/inpok4MKVLM"},
	{Title: "Медитация для сна", Minutes: 20, Description: "Расслабьтесь и подготовьтесь к глубокому восстанавливающему сну", VideoURL: "https://www.youtube.com/embed/z6X5oEIg6Ak"},
	{Title: "Снятие стресса", Minutes: 15, Description: "Освободитесь от напряжения и беспокойства", VideoURL: "https://www.youtube.com/embed/SEfs5TJZ6Nk"},
	{Title: "Медитация на дыхание", Minutes: 12, Description: "Сосредоточьтесь на дыхании для обретения спокойствия", VideoURL: "https://www.youtube.com/embed/thekH5T7JTc"},
	{Title: "Медитация благодарности", Minutes: 10, Description: "Культивируйте чувство благодарности и позитива", VideoURL: "https://www.youtube.com/embed/VZ7NwrgHZXk"},
	{Title: "Медитация для уверенности", Minutes: 15, Description: "Укрепите веру в себя и свои способности", VideoURL: "https://www.youtube.com/embed/rBdhqBGqiMc"},
}

// Catalog returns a copy of the guided meditations offered to users.
func Catalog() []CatalogItem {
	out := make([]CatalogItem, len(catalog))
	copy(out, catalog)
	return out
}
