package api

type CommitteeMember struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
	Phone    string `json:"phone,omitempty"`
	PhotoURL string `json:"photo_url,omitempty"`
}

type ListMembersResponse struct {
	Members []*CommitteeMember `json:"members"`
}

type AddMemberRequest struct {
	Name     string `json:"name"`
	Position string `json:"position"`
	Phone    string `json:"phone,omitempty"`
	PhotoURL string `json:"photo_url,omitempty"`
}

type AddMemberResponse struct {
	Member *CommitteeMember `json:"member"`
}

type DeleteMemberRequest struct {
	ID string `json:"id"`
}
