package document

import "html/template"

const wordTemplate = `<div class="document-header">
  <h3><i class="fas fa-file-word"></i> Generated Word Document</h3>
  <div class="document-meta">
    <span><i class="fas fa-calendar"></i> {{.Date}}</span>
    <span><i class="fas fa-user"></i> Created by Yara AI</span>
    <span><i class="fas fa-file-alt"></i> {{.Pages}} pages</span>
  </div>
</div>
<div class="document-content">
  <h4>{{.Prompt}}</h4>

  <h5>Executive Summary</h5>
  <p>This comprehensive document has been generated based on your specific request: "{{.Prompt}}". Our AI has analyzed your requirements and created a structured document with relevant sections, professional formatting, and actionable content.</p>

  <h5>Key Highlights</h5>
  <ul>
    <li>Comprehensive analysis of the requested topic</li>
    <li>Data-driven insights and recommendations</li>
    <li>Professional formatting and structure</li>
    <li>Ready-to-use templates and frameworks</li>
  </ul>

  <h5>Main Content</h5>
  <p>The document includes detailed sections covering all aspects of your request. Each section has been carefully crafted to provide maximum value and actionable insights. The content is structured to be both informative and practical, ensuring you can immediately implement the recommendations.</p>

  <h5>Conclusion and Next Steps</h5>
  <p>This AI-generated document provides a solid foundation for your project. The recommendations and insights can be customized further based on your specific requirements and organizational needs.</p>

  <div class="document-stats">
    <div class="stat-item"><strong>Word Count:</strong> {{.WordCount}}</div>
    <div class="stat-item"><strong>Reading Time:</strong> {{.ReadingMinutes}} minutes</div>
    <div class="stat-item"><strong>Complexity:</strong> Professional</div>
  </div>
</div>
`

const excelTemplate = `<div class="document-header">
  <h3><i class="fas fa-file-excel"></i> Generated Excel Spreadsheet</h3>
  <div class="document-meta">
    <span><i class="fas fa-calendar"></i> {{.Date}}</span>
    <span><i class="fas fa-user"></i> Created by Yara AI</span>
    <span><i class="fas fa-table"></i> {{.Worksheets}} worksheets</span>
  </div>
</div>
<div class="document-content">
  <h4>{{.Prompt}}</h4>

  <h5>Spreadsheet Overview</h5>
  <p>This intelligent spreadsheet has been designed based on your requirements. It includes multiple worksheets, automated calculations, and professional formatting.</p>

  <div class="excel-preview">
    <table class="excel-table">
      <thead>
        <tr><th>Category</th><th>Amount</th><th>Date</th><th>Status</th><th>Progress</th></tr>
      </thead>
      <tbody>
        {{- range .Rows}}
        <tr{{if .Shaded}} class="shaded"{{end}}>
          <td>{{.Category}}</td>
          <td class="num">${{.Amount}}</td>
          <td class="center">{{$.Date}}</td>
          <td><span class="status status-{{.StatusClass}}">{{.Status}}</span></td>
          <td class="num">{{.Progress}}%</td>
        </tr>
        {{- end}}
      </tbody>
    </table>
  </div>

  <h5>Features Included</h5>
  <ul>
    <li>Automated calculations and formulas</li>
    <li>Data validation and error checking</li>
    <li>Professional charts and graphs</li>
    <li>Conditional formatting</li>
    <li>Summary dashboards</li>
  </ul>

  <div class="document-stats">
    <div class="stat-item"><strong>Worksheets:</strong> {{.Worksheets}}</div>
    <div class="stat-item"><strong>Formulas:</strong> {{.Formulas}}</div>
    <div class="stat-item"><strong>Charts:</strong> {{.Charts}}</div>
  </div>
</div>
`

const slidesTemplate = `<div class="document-header">
  <h3><i class="fas fa-file-powerpoint"></i> Generated PowerPoint Presentation</h3>
  <div class="document-meta">
    <span><i class="fas fa-calendar"></i> {{.Date}}</span>
    <span><i class="fas fa-user"></i> Created by Yara AI</span>
    <span><i class="fas fa-images"></i> {{.Slides}} slides</span>
  </div>
</div>
<div class="document-content">
  <h4>{{.Prompt}}</h4>

  <h5>Presentation Overview</h5>
  <p>This professional presentation has been crafted to effectively communicate your message with engaging visuals, clear structure, and compelling content.</p>

  <div class="slides-preview">
    <div class="slide-item slide-title">
      <h5>Slide 1: Title Slide</h5>
      <h6>{{.Prompt}}</h6>
      <p>Presented by: Yara AI Assistant</p>
      <p>Date: {{.Date}}</p>
    </div>

    <div class="slide-item slide-agenda">
      <h5>Slide 2: Agenda &amp; Overview</h5>
      <ul>
        <li>Introduction and objectives</li>
        <li>Key concepts and definitions</li>
        <li>Main content and analysis</li>
        <li>Case studies and examples</li>
        <li>Conclusions and recommendations</li>
        <li>Q&amp;A and next steps</li>
      </ul>
    </div>

    <div class="slide-item slide-stats">
      <h5>Slide 3: Key Statistics</h5>
      <div class="stat-grid">
        <div class="stat-card"><div class="stat-value growth">{{.Growth}}%</div><div class="stat-label">Growth Rate</div></div>
        <div class="stat-card"><div class="stat-value users">{{.Users}}K</div><div class="stat-label">Users</div></div>
        <div class="stat-card"><div class="stat-value revenue">{{.Revenue}}M</div><div class="stat-label">Revenue</div></div>
      </div>
    </div>

    <div class="slide-item slide-conclusion">
      <h5>Slide {{.Slides}}: Conclusion</h5>
      <p>Summary of key findings and actionable recommendations for implementation.</p>
      <div class="next-steps">
        <strong>Next Steps:</strong>
        <ul>
          <li>Review and validate findings</li>
          <li>Develop implementation timeline</li>
          <li>Assign responsibilities</li>
          <li>Schedule follow-up meetings</li>
        </ul>
      </div>
    </div>
  </div>

  <div class="document-stats">
    <div class="stat-item"><strong>Total Slides:</strong> {{.Slides}}</div>
    <div class="stat-item"><strong>Duration:</strong> {{.DurationMinutes}} minutes</div>
    <div class="stat-item"><strong>Animations:</strong> Professional</div>
  </div>
</div>
`

const fallbackHTML = `<p>Document generated successfully!</p>`

// downloadTemplate is plain text; prompts are written verbatim.
const downloadTemplate = `
YARA AI GENERATED DOCUMENT
==========================

Document Type: {{.Type}}
Title: {{.Prompt}}
Generated: {{.Generated}}
Created by: Yara AI Platform

DOCUMENT SUMMARY:
This document was generated using advanced AI technology based on your specific requirements.
The content has been structured to provide maximum value and actionable insights.

CONTENT OUTLINE:
- Executive Summary
- Main Content Sections
- Data Analysis and Insights
- Recommendations
- Conclusion and Next Steps

For the complete formatted document with professional styling, charts, and detailed content,
please use the full version available through the Yara AI platform.

Visit: https://yara-ai-platform.vercel.app
Contact: support@yara-ai.com

© {{.Year}} Yara AI Platform. All rights reserved.
`

var previewTemplates = map[Type]*template.Template{
	Word:       template.Must(template.New("word").Parse(wordTemplate)),
	Excel:      template.Must(template.New("excel").Parse(excelTemplate)),
	PowerPoint: template.Must(template.New("powerpoint").Parse(slidesTemplate)),
}
