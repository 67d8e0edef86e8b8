package group

type Group struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	ClassID         string   `json:"classId"`
	TotalPoint      int      `json:"totalPoint"`
	AvailableStatus string   `json:"availableStatus"`
	Members         []Member `json:"members"`
}

type Member struct {
	StudentID string `json:"studentId"`
	FullName  string `json:"fullName"`
	Point     int    `json:"point"`
}
