package models

// Resource 人员，可被分配到资产或楼层物品上。
// 名册由宿主应用提供，本服务只读不写
type Resource struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// DefaultResources 内置人员名册
var DefaultResources = []Resource{
	{ID: "1", Name: "John Doe"},
	{ID: "2", Name: "Jane Smith"},
	{ID: "3", Name: "Bob Johnson"},
	{ID: "4", Name: "Alice Brown"},
	{ID: "5", Name: "Charlie Wilson"},
	{ID: "6", Name: "Diana Martinez"},
	{ID: "7", Name: "Edward Davis"},
	{ID: "8", Name: "Fiona Garcia"},
	{ID: "9", Name: "George Rodriguez"},
	{ID: "10", Name: "Helen Lee"},
	{ID: "11", Name: "Ian Taylor"},
	{ID: "12", Name: "Julia Anderson"},
	{ID: "13", Name: "Kevin Thompson"},
	{ID: "14", Name: "Laura White"},
	{ID: "15", Name: "Michael Harris"},
}
