package dto

type CreateJobCategoryRequest struct {
	CategoryName string `json:"categoryName" validate:"required,max=100"`
}

type UpdateJobCategoryRequest struct {
	CategoryName string `json:"categoryName" validate:"required,max=100"`
}

type JobCategoryResponse struct {
	CategoryID   uint   `json:"categoryId"`
	CategoryName string `json:"categoryName"`
	TotalJobs    int    `json:"totalJobs"`
}
