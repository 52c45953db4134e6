package intent

// Category names of the canonical table.
const (
	CategoryDocument = "document"
	CategoryVideo    = "video"
	CategoryGreeting = "greeting"
	CategoryHelp     = "help"
	CategoryPricing  = "pricing"
)

const documentReply = `I can help you create professional documents! 📄 Our AI Document Creator supports:

• **Word Documents**: Business proposals, reports, letters, and more
• **Excel Spreadsheets**: Budget trackers, data analysis, financial models
• **PowerPoint Presentations**: Pitch decks, training materials, project reports

Simply describe what you need, and I'll generate a complete document with professional formatting, relevant content, and downloadable files. Would you like to try creating a document now?`

const videoReply = `I can help you edit videos with AI-powered tools! 🎬 Our Video Editor includes:

• **Smart Trimming**: AI analyzes your video for optimal cuts
• **Professional Effects**: Filters, transitions, and visual enhancements
• **Text Overlays**: Dynamic titles, captions, and animated text
• **Background Music**: Royalty-free tracks matched to your content
• **Quality Enhancement**: Upscaling, stabilization, and color correction
• **Auto Subtitles**: Accurate captions with speaker recognition

Upload your video and let our AI transform it into professional content!`

const greetingReply = `Hello! 👋 I'm Yara, your personalized AI assistant. I'm here to help you with:

🔹 **Document Creation**: Generate Word docs, Excel sheets, and PowerPoint presentations
🔹 **Video Editing**: Professional video editing with AI-powered tools
🔹 **Question Answering**: Get instant help on any topic
🔹 **Task Assistance**: Step-by-step guidance for your projects

What would you like to accomplish today? I'm ready to help make your work easier and more efficient!`

const helpReply = `I'm your all-in-one AI assistant! Here's how I can help you: 🚀

**📄 Document Creation**
• Generate professional Word documents, Excel spreadsheets, and PowerPoint presentations
• Create business proposals, financial models, and training materials
• Professional formatting and downloadable files

**🎬 Video Editing**
• AI-powered trimming, effects, and enhancements
• Add text overlays, music, and subtitles
• Quality improvement and professional finishing

**💬 Intelligent Assistance**
• Answer questions on any topic
• Provide step-by-step guidance
• Help with planning and problem-solving

**🌟 Available 24/7**
• Instant responses and support
• Personalized recommendations
• Continuous learning and improvement

What specific task would you like help with?`

const pricingReply = `Great question about pricing! 💰 Yara AI Platform offers:

**🆓 Free Tier**
• 5 documents per month
• Basic video editing (up to 5 minutes)
• Standard AI chat support
• Community templates

**⭐ Pro Plan - $19/month**
• Unlimited document generation
• Advanced video editing (up to 60 minutes)
• Priority AI support
• Premium templates and effects
• Export in multiple formats

**🏢 Enterprise - Custom Pricing**
• Team collaboration features
• Custom branding
• API access
• Dedicated support

Start with our free tier and upgrade anytime! Would you like to try creating your first document?`

// DefaultCategories returns the canonical priority-ordered table. Document
// keywords are checked before video, greeting, help and pricing.
func DefaultCategories() []Category {
	return []Category{
		{Name: CategoryDocument, Triggers: []string{"document", "word", "excel", "powerpoint"}, Reply: documentReply},
		{Name: CategoryVideo, Triggers: []string{"video", "edit"}, Reply: videoReply},
		{Name: CategoryGreeting, Triggers: []string{"hello", "hi", "hey"}, Reply: greetingReply},
		{Name: CategoryHelp, Triggers: []string{"help", "what can you do"}, Reply: helpReply},
		{Name: CategoryPricing, Triggers: []string{"price", "cost", "free"}, Reply: pricingReply},
	}
}

// DefaultPool returns the fallback replies used when no category matches.
func DefaultPool() []string {
	return []string{
		"That's a great question! I'm here to help you find the best solution. Could you provide a bit more detail about what you're looking for?",
		"I understand what you're asking about. Let me provide you with some helpful information and guidance on this topic.",
		"Excellent point! Based on my knowledge, I can offer some insights that might be useful for your situation.",
		"I'm glad you asked! This is something I can definitely help you with. Let me break it down for you step by step.",
		"That's an interesting question! I have some ideas that could help you achieve what you're looking for.",
		"I can assist you with that! Let me provide some practical suggestions and recommendations.",
		"Great question! I'm here to help you succeed. Here's what I recommend based on your needs.",
		"I understand your request! As your AI assistant, I can guide you through this process effectively.",
	}
}
