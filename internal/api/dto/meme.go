package dto

// MemeTemplateDTO 表情包模板
type MemeTemplateDTO struct {
	ID        uint64   `json:"id"`
	Name      string   `json:"name"`
	Slug      string   `json:"slug"`
	ImageURL  string   `json:"image_url"`
	TextSlots []string `json:"text_slots"`
}

// MemeExportDTO 表情包导出请求
type MemeExportDTO struct {
	TemplateSlug string   `json:"template_slug" binding:"required" validate:"min=1,max=100"`
	Captions     []string `json:"captions" binding:"required" validate:"min=1,max=4"`
}

// MemeExportResultDTO 导出描述，由客户端完成实际合成
type MemeExportResultDTO struct {
	TemplateSlug string   `json:"template_slug"`
	ImageURL     string   `json:"image_url"`
	Captions     []string `json:"captions"`
	ExportToken  string   `json:"export_token"`
}
