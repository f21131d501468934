package service

// classifyIntentPrompt asks for a single routing token.
const classifyIntentPrompt = `You are a routing assistant for a shipment analytics system.
Classify the intent of the user message as exactly one of these tokens:
- sla: the user asks which shipments are likely to miss or breach their SLA, or asks for SLA risk analysis
- shipment: the user asks to look up, list, or filter shipment records
- general: anything else, including greetings and questions about what you can do

User message: {{$userMessage}}

Respond with only the token, nothing else.`

// shipmentFilterPrompt extracts a field/value filter dictionary for the
// shipment lookup branch.
const shipmentFilterPrompt = `You are an AI assistant that extracts structured filter criteria from user queries related to shipment data.

### Objective:
Extract all relevant filters present in the user message and return them as a JSON dictionary. Use only the valid field names listed below as keys.

### Valid Field Names:
upsShipmentNumber, shipmentMode, carrierService, shipmentCreationDatetime, pickupDatetime, deliveryETADatetime, actualDeliveryDatetime,
milestoneStatus, deliveryStatus, isAtRisk, atRiskSeverity, weatherMetar, weatherCondition, trafficCondition,
originPortCode, destinationPortCode, flightIATA, containerNumber, originCity, destinationCity,
originCountry, destinationCountry, weatherConditionRiskScore, trafficConditionRiskScore,
portCongestionRiskScore, airportCongestionRiskScore, flightDelayRiskScore, airRisk, oceanRisk, surfaceRisk

### Interpretation Rules:
- If the message says "to [city]" or "delivered in [city]", use destinationCity.
- If the message says "from [city]", use originCity.
- If a number is mentioned and it matches known formats (e.g., UPS tracking numbers, flight numbers), infer the most likely field:
    - If explicitly called "shipment number", use upsShipmentNumber
    - If called "container number", use containerNumber
    - If called "flight number" or it starts with two letters and digits (e.g., "AA123"), use flightIATA
- If a risk score is mentioned it may apply to several of the risk score fields; include every field you are confident about.
- Do not guess unknown fields; include only those you are confident about.

### Input Message:
"{{$userMessage}}"

Return only a JSON dictionary. Example:
{"destinationCity": "xyz", "originCity": "abc", "containerNumber": "123"}`

// slaFilterPrompt extracts the narrower criteria set used by the SLA branch.
const slaFilterPrompt = `You are a supply chain data assistant. Extract filter criteria from the following user message.
Return a JSON object with the following potential fields, only including fields that are mentioned:
- shipmentMode (string): e.g., 'Air', 'Ocean', 'Surface'
- originCity (string): city name
- destinationCity (string): city name
- atRisk (boolean): true if 'at risk' or 'SLA breach' is mentioned
- shipmentCreationDateTime (string): 'today', 'this week', 'this month', etc.
- deliveryETADateTime (string): 'today', 'this week', 'this month', etc.

User message: {{$userMessage}}

Return ONLY a valid JSON object WITHOUT markdown formatting or code block syntax.`

// slaSummaryPrompt turns the predicted shipment list into a narrative answer.
const slaSummaryPrompt = `You are a supply chain analyst. Based on this shipment data with SLA breach predictions, summarize which shipments are most likely to miss SLA and why.
Look at the 'slaBreach' property which indicates our prediction of whether a shipment will miss its SLA.
User asked about: {{$userMessage}}
Shipments:
{{$shipments}}
Respond in a conversational, helpful tone addressing the user's query directly. Mention key shipments at risk and their risk factors.
If there are no shipments found, politely inform the user and suggest they try a broader search.`

// riskAssessmentPrompt asks for a per-shipment risk table.
const riskAssessmentPrompt = `You are an AI assistant evaluating shipment risks.

Analyze the shipment records and return a JSON array with each shipment's:
- upsShipmentNumber
- riskLevel (High, Medium, Low)
- riskReason (e.g., delay, weather, congestion)

Respond only with a JSON array.

### Shipment Records:
{{$shipments}}

Respond with only valid JSON.`

// helpMessage is the static response for the general intent.
const helpMessage = `I can help you with shipment data. Ask me things like:
- "Which shipments might miss SLA this week?"
- "Show me air shipments to Chicago"
- "List shipments from Tokyo that are at risk"`
