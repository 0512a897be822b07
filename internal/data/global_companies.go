// Package data holds static curated reference data.
package data

// CompanyInfo contains metadata about a well-known company.
type CompanyInfo struct {
	Canonical string // Display form, e.g. "Salesforce"
}

// globalCompanies maps normalized company names (and common variants) to
// their canonical form. This is the last gazetteer tier consulted before the
// NER fallback, so it is biased toward names that show up in AI answers about
// software categories.
var globalCompanies = map[string]CompanyInfo{
	// CRM / sales
	"salesforce":     {Canonical: "Salesforce"},
	"salesforce.com": {Canonical: "Salesforce"},
	"hubspot":        {Canonical: "HubSpot"},
	"zoho":           {Canonical: "Zoho"},
	"zoho crm":       {Canonical: "Zoho"},
	"pipedrive":      {Canonical: "Pipedrive"},
	"freshworks":     {Canonical: "Freshworks"},
	"freshsales":     {Canonical: "Freshworks"},
	"close":          {Canonical: "Close"},
	"copper":         {Canonical: "Copper"},
	"insightly":      {Canonical: "Insightly"},
	"keap":           {Canonical: "Keap"},
	"infusionsoft":   {Canonical: "Keap"},
	"sugarcrm":       {Canonical: "SugarCRM"},
	"nimble":         {Canonical: "Nimble"},
	"nutshell":       {Canonical: "Nutshell"},

	// Marketing automation / email
	"mailchimp":        {Canonical: "Mailchimp"},
	"activecampaign":   {Canonical: "ActiveCampaign"},
	"active campaign":  {Canonical: "ActiveCampaign"},
	"klaviyo":          {Canonical: "Klaviyo"},
	"constant contact": {Canonical: "Constant Contact"},
	"marketo":          {Canonical: "Marketo"},
	"pardot":           {Canonical: "Pardot"},
	"braze":            {Canonical: "Braze"},
	"iterable":         {Canonical: "Iterable"},
	"sendgrid":         {Canonical: "SendGrid"},
	"convertkit":       {Canonical: "ConvertKit"},
	"drip":             {Canonical: "Drip"},
	"brevo":            {Canonical: "Brevo"},
	"sendinblue":       {Canonical: "Brevo"},
	"mailerlite":       {Canonical: "MailerLite"},
	"omnisend":         {Canonical: "Omnisend"},

	// Analytics / SEO
	"google analytics": {Canonical: "Google Analytics"},
	"semrush":          {Canonical: "Semrush"},
	"ahrefs":           {Canonical: "Ahrefs"},
	"moz":              {Canonical: "Moz"},
	"mixpanel":         {Canonical: "Mixpanel"},
	"amplitude":        {Canonical: "Amplitude"},
	"hotjar":           {Canonical: "Hotjar"},
	"tableau":          {Canonical: "Tableau"},
	"looker":           {Canonical: "Looker"},
	"similarweb":       {Canonical: "Similarweb"},

	// Big tech
	"google":     {Canonical: "Google"},
	"alphabet":   {Canonical: "Google"},
	"microsoft":  {Canonical: "Microsoft"},
	"apple":      {Canonical: "Apple"},
	"amazon":     {Canonical: "Amazon"},
	"aws":        {Canonical: "AWS"},
	"meta":       {Canonical: "Meta"},
	"facebook":   {Canonical: "Meta"},
	"openai":     {Canonical: "OpenAI"},
	"chatgpt":    {Canonical: "OpenAI"},
	"anthropic":  {Canonical: "Anthropic"},
	"perplexity": {Canonical: "Perplexity"},
	"ibm":        {Canonical: "IBM"},
	"oracle":     {Canonical: "Oracle"},
	"sap":        {Canonical: "SAP"},
	"adobe":      {Canonical: "Adobe"},
	"nvidia":     {Canonical: "NVIDIA"},
	"intel":      {Canonical: "Intel"},
	"shopify":    {Canonical: "Shopify"},
	"stripe":     {Canonical: "Stripe"},
	"paypal":     {Canonical: "PayPal"},
	"square":     {Canonical: "Square"},
	"block":      {Canonical: "Square"},
	"twilio":     {Canonical: "Twilio"},

	// Collaboration / productivity
	"slack":      {Canonical: "Slack"},
	"notion":     {Canonical: "Notion"},
	"asana":      {Canonical: "Asana"},
	"trello":     {Canonical: "Trello"},
	"monday":     {Canonical: "monday.com"},
	"monday.com": {Canonical: "monday.com"},
	"clickup":    {Canonical: "ClickUp"},
	"airtable":   {Canonical: "Airtable"},
	"atlassian":  {Canonical: "Atlassian"},
	"jira":       {Canonical: "Atlassian"},
	"confluence": {Canonical: "Atlassian"},
	"basecamp":   {Canonical: "Basecamp"},
	"smartsheet": {Canonical: "Smartsheet"},
	"wrike":      {Canonical: "Wrike"},
	"zoom":       {Canonical: "Zoom"},
	"dropbox":    {Canonical: "Dropbox"},
	"box":        {Canonical: "Box"},
	"figma":      {Canonical: "Figma"},
	"canva":      {Canonical: "Canva"},
	"miro":       {Canonical: "Miro"},
	"zapier":     {Canonical: "Zapier"},
	"calendly":   {Canonical: "Calendly"},
	"docusign":   {Canonical: "DocuSign"},
	"loom":       {Canonical: "Loom"},

	// Support / service desks
	"zendesk":    {Canonical: "Zendesk"},
	"intercom":   {Canonical: "Intercom"},
	"freshdesk":  {Canonical: "Freshdesk"},
	"helpscout":  {Canonical: "Help Scout"},
	"help scout": {Canonical: "Help Scout"},
	"gorgias":    {Canonical: "Gorgias"},
	"drift":      {Canonical: "Drift"},
	"servicenow": {Canonical: "ServiceNow"},

	// E-commerce / web
	"wordpress":    {Canonical: "WordPress"},
	"wix":          {Canonical: "Wix"},
	"squarespace":  {Canonical: "Squarespace"},
	"webflow":      {Canonical: "Webflow"},
	"bigcommerce":  {Canonical: "BigCommerce"},
	"magento":      {Canonical: "Magento"},
	"woocommerce":  {Canonical: "WooCommerce"},
	"godaddy":      {Canonical: "GoDaddy"},
	"cloudflare":   {Canonical: "Cloudflare"},
	"netlify":      {Canonical: "Netlify"},
	"vercel":       {Canonical: "Vercel"},
	"heroku":       {Canonical: "Heroku"},
	"digitalocean": {Canonical: "DigitalOcean"},

	// Dev / data
	"github":         {Canonical: "GitHub"},
	"gitlab":         {Canonical: "GitLab"},
	"bitbucket":      {Canonical: "Bitbucket"},
	"datadog":        {Canonical: "Datadog"},
	"snowflake":      {Canonical: "Snowflake"},
	"databricks":     {Canonical: "Databricks"},
	"mongodb":        {Canonical: "MongoDB"},
	"postgresql":     {Canonical: "PostgreSQL"},
	"redis":          {Canonical: "Redis"},
	"elastic":        {Canonical: "Elastic"},
	"grafana":        {Canonical: "Grafana"},
	"splunk":         {Canonical: "Splunk"},
	"twilio segment": {Canonical: "Segment"},
	"segment":        {Canonical: "Segment"},

	// HR / finance
	"workday":    {Canonical: "Workday"},
	"gusto":      {Canonical: "Gusto"},
	"rippling":   {Canonical: "Rippling"},
	"deel":       {Canonical: "Deel"},
	"bamboohr":   {Canonical: "BambooHR"},
	"quickbooks": {Canonical: "QuickBooks"},
	"xero":       {Canonical: "Xero"},
	"netsuite":   {Canonical: "NetSuite"},
	"expensify":  {Canonical: "Expensify"},
	"brex":       {Canonical: "Brex"},
	"ramp":       {Canonical: "Ramp"},
}

// LookupGlobalCompany returns the canonical info for a normalized name, or
// false when the name is not in the global list.
func LookupGlobalCompany(normalizedName string) (CompanyInfo, bool) {
	info, ok := globalCompanies[normalizedName]
	return info, ok
}

// GlobalCompanyCount returns the number of entries in the global list.
func GlobalCompanyCount() int {
	return len(globalCompanies)
}
