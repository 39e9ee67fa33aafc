package i18n

// translations is the static dictionary. The key set is shared across
// languages; English is authoritative and French mirrors it. Keys missing
// from a language fall back to English at lookup time.
var translations = map[Language]map[string]string{
	English: {
		// Navigation & headers
		"dashboard":           "Dashboard",
		"audits":              "Audits",
		"drafts":              "Drafts",
		"profile":             "Profile",
		"start_audit":         "Start Audit",
		"business_enterprise": "Business Enterprise",

		// Dashboard
		"monitor_business":      "Monitor your business performance and audit status",
		"this_months_snapshot":  "This Month's Snapshot",
		"revenue":               "Revenue",
		"expenses":              "Expenses",
		"risk_score":            "Risk Score",
		"good_standing":         "Good Standing",
		"low_risk":              "Low Risk",
		"last_audit_status":     "Last Audit Status",
		"last_audit_date":       "Last Audit Date:",
		"next_audit_due":        "Next Audit Due:",
		"quick_actions":         "Quick Actions",
		"view_audit_report":     "View Audit Report",
		"recent_activity":       "Recent Activity",
		"viewed_audit_report":   "Viewed Audit Report",
		"saved_draft":           "Saved Draft",
		"hrs_ago":               "hrs ago",

		// Start audit
		"upload_documents":  "Upload your business documents for audit",
		"upload_info":       "Upload receipts, bills, or inventory photos for this month",
		"receipts":          "Receipts",
		"bills":             "Bills",
		"inventory":         "Inventory",
		"payroll":           "Payroll",
		"take_photo":        "Take Photo",
		"upload_files":      "Upload Files",
		"upload_file_types": "PDF, images, Excel, word",
		"voice_note":        "Voice Note",
		"ai_transcribe":     "AI will transcribe",
		"uploaded_files":    "Uploaded Files",
		"save_draft":        "Save Draft",

		// Progress
		"assessing_risks":     "Assessing risks......",
		"processing_progress": "Processing progress",
		"complete":            "complete",
		"analyzing_receipts":  "Analyzing receipts.......",
		"checking_inventory":  "Checking inventory.......",
		"generating_insights": "Generating insights.......",
		"finalizing_report":   "Finalizing report.......",
		"cancel_process":      "Cancel Process",

		// Report
		"everything_looks_good":  "Everything looks good! Here's what we found.",
		"expenses_well_made":     "Expenses well Made",
		"expenses_properly_made": "87% of expenses was properly made this month",
		"revenue_up":             "Revenue Up 15%",
		"strong_growth":          "Strong growth compared to last month",
		"stock_alert":            "Stock Alert",
		"stock_levels_exceed":    "Stock levels exceed optimal thresholds",
		"ai_recommendations":     "AI Recommendations",
		"cut_utility_costs":      "Cut Utility Costs",
		"bills_increased":        "Bills increased 12% from last month",
		"inventory_management":   "Inventory Management",
		"consider_discounting":   "Consider discounting slow-moving items",
		"optimize_payment_terms": "Optimize Payment Terms",
		"negotiate_payment":      "Negotiate payment with suppliers to improve cash flow",
		"high_priority":          "High Priority",
		"medium_priority":        "Medium Priority",
		"low_priority":           "Low Priority",
		"mark_as_done":           "Mark as Done",
		"dismiss":                "Dismiss",

		// Profile & settings
		"notification":      "Notification",
		"push_notification": "Push Notification",
		"email_reports":     "Email Reports",
		"data_privacy":      "Data & Privacy",
		"auto_backup":       "Auto Backup",
		"privacy_policy":    "Privacy Policy",
		"preferences":       "Preferences",
		"dark_mode":         "Dark Mode",
		"currency":          "Currency",
		"language":          "Language",
		"support":           "Support",
		"help_center":       "Help Center",
		"contact_support":   "Contact Support",
		"sign_out":          "Sign Out",
		"delete_account":    "Delete Account",
		"edit_profile":      "Edit Profile",

		// Assistant
		"ai_assistant":       "AI Assistant",
		"ai_online":          "Online",
		"ai_offline":         "Offline - API Key Required",
		"ai_welcome_message": "Hello! I'm your AI audit assistant. I can help you with business analysis, risk assessment, and audit guidance. How can I assist you today?",
		"ai_placeholder":     "Ask me about your business audit...",
		"ai_typing":          "AI is thinking...",
		"ai_no_api_key":      "Please add your AI API key in settings to enable AI features.",
		"ai_error_message":   "Sorry, I encountered an error. Please try again or check your API key.",

		// Audits screen
		"this_week":  "This Week",
		"last_month": "Last Month",
		"completed":  "Completed",
		"pending":    "Pending",

		// General
		"back":          "Back",
		"cancel":        "Cancel",
		"done":          "Done",
		"save":          "Save",
		"delete":        "Delete",
		"edit":          "Edit",
		"mb":            "MB",
		"created":       "Created",
		"last_modified": "Last modified",
		"error":         "Error",
		"success":       "Success",
		"info":          "Info",

		// Authentication
		"login":                        "Login",
		"register":                     "Register",
		"full_name":                    "Full Name",
		"email_address":                "Email Address",
		"business_name":                "Business Name",
		"password":                     "Password",
		"welcome_back":                 "Welcome Back",
		"email":                        "Email",
		"sign_in":                      "Sign In",
		"create_account":               "Create Account",
		"please_fill_required_fields":  "Please fill in all required fields",
		"account_created_successfully": "Account created successfully",
		"get_started":                  "Get Started",

		// Draft management
		"edit_draft":           "Edit Draft",
		"delete_draft":         "Delete Draft",
		"confirm_delete_draft": "Are you sure you want to delete this draft?",
		"draft_deleted":        "Draft has been deleted successfully",
		"cannot_undo":          "This action cannot be undone.",
	},
	French: {
		// Navigation & headers
		"dashboard":           "Tableau de bord",
		"audits":              "Audits",
		"drafts":              "Brouillons",
		"profile":             "Profil",
		"start_audit":         "Démarrer l'audit",
		"business_enterprise": "Entreprise commerciale",

		// Dashboard
		"monitor_business":      "Surveillez les performances de votre entreprise et le statut d'audit",
		"this_months_snapshot":  "Instantané de ce mois",
		"revenue":               "Revenus",
		"expenses":              "Dépenses",
		"risk_score":            "Score de risque",
		"good_standing":         "Bonne position",
		"low_risk":              "Risque faible",
		"last_audit_status":     "Statut du dernier audit",
		"last_audit_date":       "Date du dernier audit:",
		"next_audit_due":        "Prochain audit dû:",
		"quick_actions":         "Actions rapides",
		"view_audit_report":     "Voir le rapport d'audit",
		"recent_activity":       "Activité récente",
		"viewed_audit_report":   "Rapport d'audit consulté",
		"saved_draft":           "Brouillon sauvegardé",
		"hrs_ago":               "h il y a",

		// Start audit
		"upload_documents":  "Téléchargez vos documents commerciaux pour l'audit",
		"upload_info":       "Téléchargez les reçus, factures ou photos d'inventaire de ce mois",
		"receipts":          "Reçus",
		"bills":             "Factures",
		"inventory":         "Inventaire",
		"payroll":           "Paie",
		"take_photo":        "Prendre une photo",
		"upload_files":      "Télécharger des fichiers",
		"upload_file_types": "PDF, images, Excel, Word",
		"voice_note":        "Note vocale",
		"ai_transcribe":     "L'IA va transcrire",
		"uploaded_files":    "Fichiers téléchargés",
		"save_draft":        "Sauvegarder le brouillon",

		// Progress
		"assessing_risks":     "Évaluation des risques......",
		"processing_progress": "Progression du traitement",
		"complete":            "terminé",
		"analyzing_receipts":  "Analyse des reçus.......",
		"checking_inventory":  "Vérification de l'inventaire.......",
		"generating_insights": "Génération d'insights.......",
		"finalizing_report":   "Finalisation du rapport.......",
		"cancel_process":      "Annuler le processus",

		// Report
		"everything_looks_good":  "Tout semble bon! Voici ce que nous avons trouvé.",
		"expenses_well_made":     "Dépenses bien faites",
		"expenses_properly_made": "87% des dépenses ont été correctement effectuées ce mois-ci",
		"revenue_up":             "Revenus en hausse de 15%",
		"strong_growth":          "Forte croissance par rapport au mois dernier",
		"stock_alert":            "Alerte stock",
		"stock_levels_exceed":    "Les niveaux de stock dépassent les seuils optimaux",
		"ai_recommendations":     "Recommandations IA",
		"cut_utility_costs":      "Réduire les coûts des services publics",
		"bills_increased":        "Les factures ont augmenté de 12% par rapport au mois dernier",
		"inventory_management":   "Gestion des stocks",
		"consider_discounting":   "Envisagez de réduire les articles à rotation lente",
		"optimize_payment_terms": "Optimiser les conditions de paiement",
		"negotiate_payment":      "Négocier le paiement avec les fournisseurs pour améliorer la trésorerie",
		"high_priority":          "Priorité élevée",
		"medium_priority":        "Priorité moyenne",
		"low_priority":           "Priorité faible",
		"mark_as_done":           "Marquer comme terminé",
		"dismiss":                "Ignorer",

		// Profile & settings
		"notification":      "Notification",
		"push_notification": "Notification push",
		"email_reports":     "Rapports par e-mail",
		"data_privacy":      "Données et confidentialité",
		"auto_backup":       "Sauvegarde automatique",
		"privacy_policy":    "Politique de confidentialité",
		"preferences":       "Préférences",
		"dark_mode":         "Mode sombre",
		"currency":          "Devise",
		"language":          "Langue",
		"support":           "Support",
		"help_center":       "Centre d'aide",
		"contact_support":   "Contacter le support",
		"sign_out":          "Se déconnecter",
		"delete_account":    "Supprimer le compte",
		"edit_profile":      "Modifier le profil",

		// Assistant
		"ai_assistant":       "Assistant IA",
		"ai_online":          "En ligne",
		"ai_offline":         "Hors ligne - Clé API requise",
		"ai_welcome_message": "Bonjour! Je suis votre assistant d'audit IA. Je peux vous aider avec l'analyse commerciale, l'évaluation des risques et les conseils d'audit. Comment puis-je vous aider aujourd'hui?",
		"ai_placeholder":     "Demandez-moi votre audit d'entreprise...",
		"ai_typing":          "L'IA réfléchit...",
		"ai_no_api_key":      "Veuillez ajouter votre clé API IA dans les paramètres pour activer les fonctionnalités IA.",
		"ai_error_message":   "Désolé, j'ai rencontré une erreur. Veuillez réessayer ou vérifier votre clé API.",

		// Audits screen
		"this_week":  "Cette semaine",
		"last_month": "Le mois dernier",
		"completed":  "Terminé",
		"pending":    "En attente",

		// General
		"back":          "Retour",
		"cancel":        "Annuler",
		"done":          "Terminé",
		"save":          "Sauvegarder",
		"delete":        "Supprimer",
		"edit":          "Modifier",
		"mb":            "Mo",
		"created":       "Créé",
		"last_modified": "Dernière modification",
		"error":         "Erreur",
		"success":       "Succès",
		"info":          "Info",

		// Authentication
		"login":                        "Connexion",
		"register":                     "S'inscrire",
		"full_name":                    "Nom complet",
		"email_address":                "Adresse e-mail",
		"business_name":                "Nom de l'entreprise",
		"password":                     "Mot de passe",
		"welcome_back":                 "Bon retour",
		"email":                        "Email",
		"sign_in":                      "Se connecter",
		"create_account":               "Créer un compte",
		"please_fill_required_fields":  "Veuillez remplir tous les champs requis",
		"account_created_successfully": "Compte créé avec succès",
		"get_started":                  "Commencer",

		// Draft management
		"edit_draft":           "Modifier le brouillon",
		"delete_draft":         "Supprimer le brouillon",
		"confirm_delete_draft": "Êtes-vous sûr de vouloir supprimer ce brouillon ?",
		"draft_deleted":        "Le brouillon a été supprimé avec succès",
		"cannot_undo":          "Cette action ne peut pas être annulée.",
	},
}
